package app

import "context"

func (a *App) authMenu(ctx context.Context) (quit bool) {
	a.printf("")
	a.printf("1) login  2) register  q) quit")

	switch a.readLine("> ") {
	case "1":
		a.loginScreen(ctx)
	case "2":
		a.registerScreen(ctx)
	case "q", "quit", "exit":
		return true
	case "":
		if a.inputClosed() {
			return true
		}
	}
	return false
}

func (a *App) loginScreen(ctx context.Context) {
	email := a.readLine("email: ")
	password := a.readLine("password: ")

	user, err := a.deps.Auth.Login(ctx, email, password)
	if err != nil {
		a.fail(err)
		return
	}
	if user == nil {
		a.printf("wrong email or password")
		return
	}
	a.session.SetUser(user)
	a.printf("welcome back, %s", user.Email)
}

func (a *App) registerScreen(ctx context.Context) {
	email := a.readLine("email: ")
	password := a.readLine("password: ")
	confirm := a.readLine("repeat password: ")
	if password != confirm {
		a.printf("passwords do not match")
		return
	}

	user, err := a.deps.Auth.Register(ctx, email, password)
	if err != nil {
		a.fail(err)
		return
	}
	a.session.SetUser(user)
	a.printf("account created: %s", user.Email)
}
