package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh/spinner"
	"github.com/fkoehler/znuny-ticket-cli/internal/znuny"
	"github.com/spf13/cobra"
)

var (
	title       string
	customer    string
	queueId     int
	queueName   string
	subject     string
	body        string
	from        string
	channel     string
	contentType string
	ticketData  []string
	attachments []string
	extended    bool
	copyNumber  bool
)

var createCmd = &cobra.Command{
	Use: "create",
	RunE: func(cmd *cobra.Command, args []string) error {
		extra, err := parseTicketData(ticketData)
		if err != nil {
			return err
		}

		if err := stageAttachments(attachments); err != nil {
			return fmt.Errorf("staging attachments: %w", err)
		}

		var res map[string]interface{}
		if err := spinner.New().Title("Creating ticket").Context(ctx).ActionWithErr(func(ctx context.Context) error {
			var err error
			res, err = client.CreateTicket(ctx, title, customer, znuny.Queue{Id: queueId, Name: queueName}, extra, articleInput())
			return err
		}).Run(); err != nil {
			return fmt.Errorf("an error occured creating the ticket: %w", err)
		}

		fmt.Println("Ticket ID:", res["ticketId"])
		fmt.Println("Ticket Number:", res["ticketNumber"])
		return nil
	},
}

var commentCmd = &cobra.Command{
	Use:     "comment",
	Aliases: []string{"c"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ti, err := ticketIdArg(args)
		if err != nil {
			return err
		}

		if err := stageAttachments(attachments); err != nil {
			return fmt.Errorf("staging attachments: %w", err)
		}

		if err := spinner.New().Title("Adding article").Context(ctx).ActionWithErr(func(ctx context.Context) error {
			_, err := client.AddArticle(ctx, ti, articleInput())
			return err
		}).Run(); err != nil {
			return fmt.Errorf("an error occured adding the article: %w", err)
		}

		fmt.Println("Article added to ticket", ti)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:     "get",
	Aliases: []string{"g"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ti, err := ticketIdArg(args)
		if err != nil {
			return err
		}

		var ticket map[string]interface{}
		if err := spinner.New().Title("Fetching ticket").Context(ctx).ActionWithErr(func(ctx context.Context) error {
			var err error
			ticket, err = client.GetTicket(ctx, ti, extended)
			return err
		}).Run(); err != nil {
			return fmt.Errorf("an error occured getting the ticket: %w", err)
		}

		fmt.Println(ticketView(ti, ticket))
		return nil
	},
}

var numberCmd = &cobra.Command{
	Use:     "number",
	Aliases: []string{"n"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ti, err := ticketIdArg(args)
		if err != nil {
			return err
		}

		tn, err := client.GetTicketNumber(ctx, ti)
		if err != nil {
			return fmt.Errorf("an error occured getting the ticket number: %w", err)
		}

		fmt.Println(tn)
		if copyNumber {
			if err := clipboard.WriteAll(tn); err != nil {
				return fmt.Errorf("copying ticket number to clipboard: %w", err)
			}
		}

		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&title, "title", "", "ticket title")
	createCmd.Flags().StringVar(&customer, "customer", "", "customer user login or email")
	createCmd.Flags().IntVar(&queueId, "queue-id", 0, "destination queue id (takes precedence over --queue)")
	createCmd.Flags().StringVar(&queueName, "queue", "", "destination queue name")
	createCmd.Flags().StringArrayVar(&ticketData, "field", nil, "extra ticket field as Key=Value (repeatable)")

	for _, c := range []*cobra.Command{createCmd, commentCmd} {
		c.Flags().StringVar(&subject, "subject", "", "article subject")
		c.Flags().StringVar(&body, "body", "", "article body")
		c.Flags().StringVar(&from, "from", "", "article From address")
		c.Flags().StringVar(&channel, "channel", "note-internal", "communication channel")
		c.Flags().StringVar(&contentType, "content-type", "text/plain; charset=utf8", "article content type")
		c.Flags().StringArrayVar(&attachments, "attach", nil, "attachment as path[:name[:mime]] (repeatable)")
	}

	getCmd.Flags().BoolVar(&extended, "extended", false, "fetch extended ticket data")
	numberCmd.Flags().BoolVar(&copyNumber, "copy", false, "copy the ticket number to the clipboard")

	rootCmd.AddCommand(createCmd, commentCmd, getCmd, numberCmd)
}

func articleInput() znuny.Article {
	return znuny.Article{
		CreatedBy:   conf.Znuny.Creds.Username,
		Subject:     subject,
		Body:        body,
		From:        from,
		ContentType: contentType,
		Channel:     znuny.Channel(channel),
	}
}

func ticketIdArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one argument (ticket ID)")
	}

	ti, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid ticket ID - must be an integer")
	}

	return ti, nil
}

func parseTicketData(fields []string) (map[string]interface{}, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	extra := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		key, value, found := strings.Cut(f, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --field %q - must be Key=Value", f)
		}
		extra[key] = value
	}

	return extra, nil
}

// stageAttachments queues each --attach flag on the client. The flag format
// is path[:name[:mime]]; name falls back to the file's base name.
func stageAttachments(specs []string) error {
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)

		path := parts[0]
		name := filepath.Base(path)
		mime := "application/octet-stream"

		if len(parts) > 1 && parts[1] != "" {
			name = parts[1]
		}
		if len(parts) > 2 && parts[2] != "" {
			mime = parts[2]
		}

		if err := client.StageAttachment(path, name, mime); err != nil {
			return err
		}
	}

	return nil
}
