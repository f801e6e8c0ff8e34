package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"tangtang/internal/chat"
	"tangtang/pkg/types"
)

var chatCommand = &cli.Command{
	Name:      "chat",
	Usage:     "Join the live chat on a case page",
	ArgsUsage: "<case-id>",
	Action:    runChat,
}

func runChat(cCtx *cli.Context) error {
	a, err := buildApp(cCtx)
	if err != nil {
		return err
	}

	caseID := cCtx.Args().First()
	if caseID == "" {
		return fmt.Errorf("usage: tangtang chat <case-id>")
	}

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := chat.NewService(a.client, a.viewer(), a.logger,
		time.Duration(a.config.ChatPollIntervalSec)*time.Second,
		chat.WithOnParked(func() {
			fmt.Println("! connection lost, press enter to retry")
		}),
	)
	defer svc.Close()

	room, err := svc.Open(ctx, caseID)
	if err != nil {
		return err
	}

	fmt.Printf("joined chat for case %s (ctrl-c to leave)\n", caseID)

	go printUpdates(ctx, room)

	lines := make(chan string)
	go readLines(ctx, lines)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nleaving chat")
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}

			if room.Parked() {
				// Manual retry after the poller gave up.
				room.Resume()
			}

			if line == "" {
				continue
			}

			if _, err := room.Send(ctx, line); err != nil {
				if errors.Is(err, chat.ErrSignInRequired) {
					fmt.Println("! sign in to send messages")
					continue
				}
				fmt.Printf("! send failed: %v\n", err)
			}
		}
	}
}

func printUpdates(ctx context.Context, room *chat.Room) {
	var seen int
	for {
		select {
		case <-ctx.Done():
			return
		case msgs, ok := <-room.Updates():
			if !ok {
				return
			}

			if len(msgs) < seen {
				seen = 0
			}
			for _, msg := range msgs[seen:] {
				printMessage(msg)
			}
			seen = len(msgs)
		}
	}
}

func printMessage(msg types.Message) {
	who := "?"
	if msg.User != nil {
		who = msg.User.Name
		if msg.User.IsAdmin {
			who += " (admin)"
		}
	}
	fmt.Printf("[%s] %s: %s\n", msg.CreatedAt.Local().Format("15:04"), who, msg.Content)
}

func readLines(ctx context.Context, out chan<- string) {
	defer close(out)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		case out <- scanner.Text():
		}
	}
}
