package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dbellanger/lexico/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.api.Register(ctx, userName, string(password)); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			log.Println("Username already in use")
			return err
		}
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the API client keeps the session token and a.userName is set.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.api.Login(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorUnavailable) {
			log.Println("Server unavailable, try again later")
		} else {
			log.Println("Login unsuccessfull: invalid credentials")
		}
		return err
	}

	a.userName = session.Username
	log.Println("Login successfull")
	return nil
}

// Logout drops the session token. Tokens are self-contained, so the previous
// one simply stops being used.
func (a *App) Logout(ctx context.Context) {
	a.api.Logout()
	a.userName = ""
}
