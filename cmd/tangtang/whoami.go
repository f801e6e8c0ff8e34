package main

import (
	"fmt"
	"time"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var whoamiCommand = &cli.Command{
	Name:   "whoami",
	Usage:  "Show the identity behind the configured token",
	Action: whoami,
}

func whoami(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	if !a.session.Active() {
		fmt.Println("anonymous (no token configured)")
		return nil
	}

	claims, err := a.session.Claims()
	if err != nil {
		return fmt.Errorf("parse token claims: %w", err)
	}

	if a.debug {
		pp.Println(claims)
	}

	fmt.Printf("user: %s (%s)\n", claims.Name, claims.Subject)
	if claims.IsAdmin {
		fmt.Println("role: admin")
	}

	switch {
	case claims.ExpiresAt.IsZero():
		fmt.Println("token: no expiry claim")
	case a.session.Expired(time.Now()):
		fmt.Printf("token: expired at %s\n", claims.ExpiresAt.Local().Format(time.RFC3339))
	default:
		fmt.Printf("token: valid until %s\n", claims.ExpiresAt.Local().Format(time.RFC3339))
	}

	return nil
}
