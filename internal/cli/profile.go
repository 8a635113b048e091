package cli

import (
	"context"
	"fmt"
	"strings"
)

// profileScreen loads the per-user document, lets the user edit name
// and company and saves them wholesale.
func (a *App) profileScreen(ctx context.Context) error {
	email, ok := a.session.Current()
	if !ok {
		a.logger.Error("user not authenticated")
		return nil
	}

	p, err := a.profiles.Load(ctx, email)
	if err != nil {
		a.logger.Errorf("load profile: %s", err)
		a.showAlert(err.Error())
		return nil
	}

	fmt.Fprintln(a.out, "Profile:", email)

	name, err := getTextDefault(a.reader, "Name", p.Name, a.out)
	if err != nil {
		return err
	}
	company, err := getTextDefault(a.reader, "Company", p.Company, a.out)
	if err != nil {
		return err
	}

	for {
		cmd, err := getSimpleText(a.reader, "Actions: save, back", a.out)
		if err != nil {
			return err
		}

		switch strings.ToLower(cmd) {
		case "save":
			if err := a.profiles.Save(ctx, email, name, company); err != nil {
				a.logger.Errorf("error saving user data: %s", err)
				a.showAlert(err.Error())
				continue
			}
			fmt.Fprintln(a.out, "Profile saved")
			return nil

		case "back":
			return nil

		case "":

		default:
			fmt.Fprintln(a.out, "Unknown action:", cmd)
		}
	}
}
