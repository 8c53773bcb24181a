package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/percify/internal/common"
	"github.com/dmitrijs2005/percify/internal/models"
	"github.com/dmitrijs2005/percify/internal/seed"
	"github.com/dmitrijs2005/percify/internal/swipedeck"
)

var errNoSuchPosition = errors.New("no such position")

func formatCard(r models.Recruitment) string {
	return fmt.Sprintf("%s | %s | %s %s | %s", r.CompanyName, r.Title, r.Pay1Label, r.Pay1, r.Location)
}

func formatEntry(e swipedeck.Entry) string {
	switch v := e.(type) {
	case swipedeck.CardEntry:
		return formatCard(v.Item)
	case swipedeck.HintEntry:
		return "[hint] swipe right to like, left to pass"
	default:
		return fmt.Sprintf("%v", e)
	}
}

func formatChat(i int, c models.Chat) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%2d. ", i+1)
	if c.IsUnread {
		b.WriteString("* ")
	}
	b.WriteString(c.CompanyName)
	if c.Badge != nil {
		fmt.Fprintf(&b, " [%s]", c.Badge.Label())
	}
	fmt.Fprintf(&b, " %s: %s", c.Timestamp, c.MessagePreview)
	if c.DeclinedAt != nil {
		fmt.Fprintf(&b, " (declined %s)", c.DeclinedAt.Format("2006-01-02 15:04"))
	}
	return b.String()
}

func pick[T any](list []T, n int) (T, error) {
	var zero T
	if n < 1 || n > len(list) {
		return zero, fmt.Errorf("%w: %d of %d", errNoSuchPosition, n, len(list))
	}
	return list[n-1], nil
}

// Deck prints the deck from the top down.
func (a *App) Deck(context.Context) error {
	deck := a.deck.Deck()
	if len(deck) == 0 {
		printlnFn("The deck is empty.")
		return nil
	}
	for i := len(deck) - 1; i >= 0; i-- {
		printlnFn(fmt.Sprintf("%2d. %s", len(deck)-i, formatEntry(deck[i])))
	}
	return nil
}

func (a *App) Swipe(ctx context.Context, like bool) error {
	action := swipedeck.ActionDislike
	if like {
		action = swipedeck.ActionLike
	}

	e, err := a.deck.SwipeTop(action)
	if errors.Is(err, common.ErrEmptyDeck) {
		printlnFn("The deck is empty.")
		return nil
	}
	if err != nil {
		return err
	}

	switch v := e.(type) {
	case swipedeck.HintEntry:
		printlnFn("Hint dismissed.")
	case swipedeck.CardEntry:
		printlnFn(fmt.Sprintf("%sd: %s", action, formatCard(v.Item)))
	}
	return a.Progress(ctx)
}

func (a *App) Undo(context.Context) error {
	if !a.deck.Undo() {
		printlnFn("Nothing to undo.")
		return nil
	}
	if top, ok := a.deck.Top(); ok {
		printlnFn("Back on top:", formatEntry(top))
	}
	return nil
}

func (a *App) UndoAll(context.Context) error {
	n := len(a.deck.History())
	a.deck.UndoAll()
	printlnFn(fmt.Sprintf("Returned %d cards to the deck.", n))
	return nil
}

func (a *App) Hint(context.Context) error {
	if !a.deck.InsertHint() {
		printlnFn("A hint is already on the deck.")
		return nil
	}
	printlnFn("Hint added on top.")
	return nil
}

func (a *App) Decided(_ context.Context, liked bool) error {
	list, label := a.deck.Skipped(), "skipped"
	if liked {
		list, label = a.deck.Liked(), "liked"
	}

	if len(list) == 0 {
		printlnFn(fmt.Sprintf("Nothing %s yet.", label))
		return nil
	}
	for i, r := range list {
		printlnFn(fmt.Sprintf("%2d. %s", i+1, formatCard(r)))
	}
	return nil
}

// Dismiss removes the n-th liked (or skipped) posting for good.
func (a *App) Dismiss(_ context.Context, liked bool, n int) error {
	list, remove := a.deck.Skipped(), a.deck.RemoveSkipped
	if liked {
		list, remove = a.deck.Liked(), a.deck.RemoveLiked
	}

	item, err := pick(list, n)
	if err != nil {
		return err
	}
	remove(item)
	printlnFn("Removed:", formatCard(item))
	return nil
}

func (a *App) Progress(context.Context) error {
	printlnFn(fmt.Sprintf("Progress %.0f%% (%d of %d) | liked %d | skipped %d",
		a.deck.SwipeProgressPercentage(),
		a.deck.TotalInteractions(), a.deck.InitialCardCount(),
		a.deck.LikeCount(), a.deck.SkipCount()))
	return nil
}

// More puts a fresh batch of placeholder postings under the deck.
func (a *App) More(context.Context) error {
	n := a.deck.AddItems(seed.Recruitments())
	printlnFn(fmt.Sprintf("Added %d cards to the bottom of the deck.", n))
	return nil
}

func (a *App) ResetDeck(context.Context) error {
	a.deck.Reset()
	printlnFn(fmt.Sprintf("Deck reset with %d cards.", a.deck.CardCount()))
	return nil
}

// Chats lists the active inbox, or the archive when archived is set.
func (a *App) Chats(_ context.Context, archived bool) error {
	list := a.chats.ActiveChats()
	if archived {
		list = a.chats.DeclinedChats()
	}

	if len(list) == 0 {
		printlnFn("No chats.")
		return nil
	}
	for i, c := range list {
		printlnFn(formatChat(i, c))
	}
	if !archived {
		printlnFn(fmt.Sprintf("Unread %d | archived %d", a.chats.UnreadCount(), a.chats.DeclinedCount()))
	}
	return nil
}

// ChatAction applies action to the n-th chat. restore and delete address the
// archive listing, read and decline the active one.
func (a *App) ChatAction(ctx context.Context, action string, n int) error {
	list := a.chats.ActiveChats()
	if action == "restore" || action == "delete" {
		list = a.chats.DeclinedChats()
	}

	c, err := pick(list, n)
	if err != nil {
		return err
	}

	switch action {
	case "read":
		a.chats.MarkAsRead(ctx, c.ID)
	case "decline":
		a.chats.DeclineChat(ctx, c.ID)
	case "restore":
		a.chats.RestoreChat(ctx, c.ID)
	case "delete":
		a.chats.DeleteChat(ctx, c.ID)
	default:
		return fmt.Errorf("unknown chat action %q", action)
	}
	printlnFn(fmt.Sprintf("%s: %s", action, c.CompanyName))
	return nil
}

// Fetch adds a fresh batch of placeholder scouts to the inbox.
func (a *App) Fetch(ctx context.Context) error {
	n := a.chats.AddChats(ctx, seed.Chats())
	printlnFn(fmt.Sprintf("%d new chats.", n))
	return nil
}

// Refresh reloads the placeholder inbox without saving it.
func (a *App) Refresh(ctx context.Context) error {
	a.chats.Refresh(ctx)
	printlnFn(fmt.Sprintf("Inbox refreshed with %d chats.", len(a.chats.Chats())))
	return nil
}

func (a *App) ResetInbox(ctx context.Context) error {
	a.chats.Reset(ctx)
	printlnFn(fmt.Sprintf("Inbox reset with %d chats.", len(a.chats.Chats())))
	return nil
}

func (a *App) Thread(context.Context) error {
	for _, m := range a.thread.Messages() {
		who := "recruiter"
		if m.FromCurrentUser {
			who = "you"
		}
		printlnFn(fmt.Sprintf("[%s] %s:\n%s\n", m.Timestamp.Format("2006-01-02 15:04"), who, m.Text))
	}
	if a.thread.IsAccepted() {
		printlnFn("Scout accepted.")
	}
	return nil
}

func (a *App) Send(ctx context.Context, text string) error {
	if _, err := a.thread.SendMessage(ctx, text); err != nil {
		return err
	}
	printlnFn("Sent.")
	return nil
}

func (a *App) Accept(ctx context.Context) error {
	a.thread.AcceptScout(ctx)
	printlnFn("Scout accepted.")
	return nil
}

func (a *App) ResetDemo(ctx context.Context) error {
	a.thread.ResetDemo(ctx)
	printlnFn("Thread reset.")
	return nil
}

// Wipe erases everything in storage and starts every store over from its
// placeholder data.
func (a *App) Wipe(ctx context.Context) error {
	stored, err := a.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list storage: %w", err)
	}
	if err := a.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}

	a.deck.Reset()
	a.chats.Reset(ctx)
	a.thread.ResetDemo(ctx)
	printlnFn(fmt.Sprintf("Wiped %d stored values.", len(stored)))
	return nil
}
