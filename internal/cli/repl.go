package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App implements it;
// tests use a recording stub.
type execIface interface {
	Deck(ctx context.Context) error
	Swipe(ctx context.Context, like bool) error
	Undo(ctx context.Context) error
	UndoAll(ctx context.Context) error
	Hint(ctx context.Context) error
	Decided(ctx context.Context, liked bool) error
	Dismiss(ctx context.Context, liked bool, n int) error
	Progress(ctx context.Context) error
	More(ctx context.Context) error
	ResetDeck(ctx context.Context) error

	Chats(ctx context.Context, archived bool) error
	ChatAction(ctx context.Context, action string, n int) error
	Fetch(ctx context.Context) error
	Refresh(ctx context.Context) error
	ResetInbox(ctx context.Context) error

	Thread(ctx context.Context) error
	Send(ctx context.Context, text string) error
	Accept(ctx context.Context) error
	ResetDemo(ctx context.Context) error

	Wipe(ctx context.Context) error
}

const helpText = `Deck:    deck, like, dislike, undo, undoall, hint, liked, skipped, unlike N, unskip N, progress, more, reset
Inbox:   chats, read N, decline N, fetch, refresh, reset inbox
Archive: archived, restore N, delete N
Thread:  thread, send TEXT, accept, resetdemo
General: wipe, help, exit`

// chatActions maps the inbox commands that take a listing position.
var chatActions = map[string]struct{}{
	"read": {}, "decline": {}, "restore": {}, "delete": {},
}

// runREPL reads one command per line from scanner and dispatches it to a.
// When prompt is non-empty it is printed before each read. The loop ends on
// EOF, on "exit" or "quit", or when ctx is done. Handler errors are reported
// and the loop carries on.
func runREPL(ctx context.Context, a execIface, prompt string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		if prompt != "" {
			printlnFn(prompt)
		}
		if !scanner.Scan() {
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		if cmd == "" {
			continue
		}
		rest = strings.TrimSpace(rest)

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "deck":
			err = a.Deck(ctx)
		case "like":
			err = a.Swipe(ctx, true)
		case "dislike":
			err = a.Swipe(ctx, false)
		case "undo":
			err = a.Undo(ctx)
		case "undoall":
			err = a.UndoAll(ctx)
		case "hint":
			err = a.Hint(ctx)
		case "liked":
			err = a.Decided(ctx, true)
		case "skipped":
			err = a.Decided(ctx, false)
		case "unlike", "unskip":
			var n int
			if n, err = parseIndex(cmd, rest); err == nil {
				err = a.Dismiss(ctx, cmd == "unlike", n)
			}
		case "progress":
			err = a.Progress(ctx)
		case "more":
			err = a.More(ctx)
		case "reset":
			switch rest {
			case "", "deck":
				err = a.ResetDeck(ctx)
			case "inbox":
				err = a.ResetInbox(ctx)
			default:
				err = errors.New("usage: reset [deck|inbox]")
			}

		case "chats":
			err = a.Chats(ctx, false)
		case "archived":
			err = a.Chats(ctx, true)
		case "fetch":
			err = a.Fetch(ctx)
		case "refresh":
			err = a.Refresh(ctx)

		case "thread":
			err = a.Thread(ctx)
		case "send":
			err = a.Send(ctx, rest)
		case "accept":
			err = a.Accept(ctx)
		case "resetdemo":
			err = a.ResetDemo(ctx)

		case "wipe":
			err = a.Wipe(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if _, ok := chatActions[cmd]; ok {
				var n int
				if n, err = parseIndex(cmd, rest); err == nil {
					err = a.ChatAction(ctx, cmd, n)
				}
				break
			}
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

// parseIndex reads the 1-based position argument of cmd.
func parseIndex(cmd, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("usage: %s N (N is a position from the listing)", cmd)
	}
	return n, nil
}
