package app

import "context"

const chatDisplayLimit = 500

func (a *App) chatScreen(ctx context.Context, userID uint) {
	a.listChat(ctx, userID)

	for {
		line := a.readLine("message ( /clear to wipe, enter to go back ): ")
		switch line {
		case "":
			return
		case "/clear":
			if a.readLine("delete all chat? (y/n) ") == "y" {
				if err := a.deps.Chat.Clear(ctx, userID); err != nil {
					a.fail(err)
				}
				a.listChat(ctx, userID)
			}
		default:
			a.sendChat(ctx, userID, line)
		}
	}
}

func (a *App) listChat(ctx context.Context, userID uint) {
	messages, err := a.deps.Chat.List(ctx, userID, chatDisplayLimit)
	if err != nil {
		a.fail(err)
		return
	}
	for _, m := range messages {
		a.printf("[%s] %s", m.Role, m.Message)
	}
}

// sendChat runs the coach turn on a worker goroutine. Whatever the outcome,
// the history is re-read from storage: on failure the sent message is still
// there, with no reply, which is exactly what happened.
func (a *App) sendChat(ctx context.Context, userID uint, message string) {
	a.printf("coach is thinking...")
	results := make(chan aiResult, 1)
	go func() {
		reply, err := a.deps.Coach.Chat(ctx, userID, message)
		results <- aiResult{text: reply, err: err}
	}()

	if res := <-results; res.err != nil {
		a.fail(res.err)
	}
	a.listChat(ctx, userID)
}
