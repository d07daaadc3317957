package users

import (
	"context"
	"fmt"

	"github.com/markusproject/markusapi/internal/cmd/base"
	"github.com/markusproject/markusapi/pkg/markus"
)

type Command struct {
	*base.Command

	flagCreate       bool
	flagUserName     string
	flagType         string
	flagFirstName    string
	flagLastName     string
	flagSection      string
	flagGraceCredits string
}

func (c *Command) Synopsis() string {
	return "List or create MarkUs users"
}

func (c *Command) Help() string {
	return `Usage: markus users [options]

  Lists every user of the MarkUs instance. With -create, creates a single
  user instead and prints the server's response.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := c.NewFlagSet("users")

	f.BoolVar(&c.flagCreate, "create", false,
		"Create a user instead of listing users.")
	f.StringVar(&c.flagUserName, "user-name", "",
		"User name of the new user.")
	f.StringVar(&c.flagType, "type", markus.UserTypeStudent,
		"Type of the new user: Student, Ta or Admin.")
	f.StringVar(&c.flagFirstName, "first-name", "",
		"First name of the new user.")
	f.StringVar(&c.flagLastName, "last-name", "",
		"Last name of the new user.")
	f.StringVar(&c.flagSection, "section", "",
		"Section name of the new user (students only).")
	f.StringVar(&c.flagGraceCredits, "grace-credits", "",
		"Grace credits of the new user (students only).")

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}
	ctx := context.Background()

	if !c.flagCreate {
		users, err := client.GetAllUsers(ctx)
		if err != nil {
			ui.Error(fmt.Sprintf("error listing users: %v", err))
			return 1
		}
		if err := c.Output(users); err != nil {
			ui.Error(err.Error())
			return 1
		}
		return 0
	}

	if c.flagUserName == "" || c.flagFirstName == "" || c.flagLastName == "" {
		ui.Error("user-name, first-name and last-name flags are required with -create")
		return 1
	}

	resp, err := client.NewUser(ctx, markus.NewUser{
		UserName:     c.flagUserName,
		Type:         c.flagType,
		FirstName:    c.flagFirstName,
		LastName:     c.flagLastName,
		SectionName:  c.flagSection,
		GraceCredits: c.flagGraceCredits,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error creating user: %v", err))
		return 1
	}
	return c.OutputResponse(resp)
}
