// Command client is a small CLI for exercising the notesage server API:
// registering, logging in, managing notes, and asking the assistant.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dsemenko/notesage/internal/adapter"
	"github.com/dsemenko/notesage/models"
	"github.com/google/uuid"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: client [-s server] [-t token] <command> [args]

commands:
  register <login> <password>   create an account and print the bearer token
  login    <login> <password>   authenticate and print the bearer token
  create   [id]                 create an empty note (id generated when omitted)
  update   <id> <text>          replace a note's text
  delete   <id>                 delete a note
  list                          list all notes, newest first
  ask      <question>           ask the assistant about your notes
`

func main() {
	printBuildInfo()

	serverURL := flag.String("s", "http://localhost:8080", "server base URL")
	token := flag.String("t", os.Getenv("NOTESAGE_TOKEN"), "bearer token for authenticated commands")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	srv := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *serverURL,
		Timeout: 30 * time.Second,
	})
	srv.SetToken(*token)

	ctx := context.Background()

	if err := run(ctx, srv, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, srv adapter.ServerAdapter, args []string) error {
	command, args := args[0], args[1:]

	switch command {
	case "register":
		if len(args) != 2 {
			return fmt.Errorf("register expects <login> <password>")
		}
		user, err := srv.Register(ctx, models.User{Login: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		fmt.Printf("registered %s (user id %d)\n", user.Login, user.UserID)
		fmt.Printf("token: %s\n", srv.Token())
		return nil

	case "login":
		if len(args) != 2 {
			return fmt.Errorf("login expects <login> <password>")
		}
		token, err := srv.Login(ctx, models.User{Login: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		fmt.Printf("logged in as user id %d\n", token.UserID)
		fmt.Printf("token: %s\n", srv.Token())
		return nil

	case "create":
		if len(args) > 1 {
			return fmt.Errorf("create expects at most one [id]")
		}
		noteID := uuid.NewString()
		if len(args) == 1 {
			noteID = args[0]
		}
		note, err := srv.CreateNote(ctx, noteID)
		if err != nil {
			return err
		}
		fmt.Printf("created note %s\n", note.ID)
		return nil

	case "update":
		if len(args) != 2 {
			return fmt.Errorf("update expects <id> <text>")
		}
		if err := srv.UpdateNote(ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("updated note %s\n", args[0])
		return nil

	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete expects <id>")
		}
		if err := srv.DeleteNote(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted note %s\n", args[0])
		return nil

	case "list":
		notes, err := srv.ListNotes(ctx)
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Println("no notes")
			return nil
		}
		for _, note := range notes {
			fmt.Printf("%s\t%s\t%s\n", note.ID, note.UpdatedAt.Format(time.RFC3339), note.Text)
		}
		return nil

	case "ask":
		if len(args) != 1 {
			return fmt.Errorf("ask expects <question>")
		}
		answer, err := srv.Ask(ctx, []string{args[0]}, nil)
		if err != nil {
			return err
		}
		fmt.Println(answer)
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
