package compose

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message types a compose box can address.
const (
	MessageTypeStream  = "stream"
	MessageTypePrivate = "private"
)

// PlaceholderOptions describes what the compose box headings hold so far.
type PlaceholderOptions struct {
	MessageType string
	Stream      string
	Topic       string
	// PrivateMessageRecipient is a comma-separated list of emails.
	PrivateMessageRecipient string
}

// Person is a directory entry.
type Person struct {
	UserID   int
	Email    string
	FullName string
}

// Directory resolves recipients for placeholder text.
type Directory interface {
	PersonByEmail(email string) (Person, bool)
	StatusText(userID int) string
}

var defaultPrinter = message.NewPrinter(language.English)

// Placeholder computes the placeholder text for the compose box from the
// headings that are already filled in. Stream, topic and user names come
// back unescaped; the caller escapes them for its output.
//
// A nil dir resolves every recipient to its email; a nil p prints English.
func Placeholder(opts PlaceholderOptions, dir Directory, p *message.Printer) string {
	if p == nil {
		p = defaultPrinter
	}

	if opts.MessageType == MessageTypeStream {
		if opts.Topic != "" {
			return p.Sprintf("Message #%s > %s", opts.Stream, opts.Topic)
		} else if opts.Stream != "" {
			return p.Sprintf("Message #%s", opts.Stream)
		}
	}

	if recipients := splitRecipients(opts.PrivateMessageRecipient); len(recipients) > 0 {
		people := make([]Person, 0, len(recipients))
		names := make([]string, 0, len(recipients))
		for _, email := range recipients {
			person := lookupPerson(dir, email)
			people = append(people, person)
			names = append(names, person.FullName)
		}
		joined := strings.Join(names, ", ")

		if len(people) == 1 && dir != nil {
			if status := dir.StatusText(people[0].UserID); status != "" {
				return p.Sprintf("Message %s (%s)", joined, status)
			}
		}
		return p.Sprintf("Message %s", joined)
	}

	return p.Sprintf("Compose your message here")
}

func splitRecipients(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if email := strings.TrimSpace(part); email != "" {
			out = append(out, email)
		}
	}
	return out
}

// lookupPerson falls back to the bare email when the directory does not know
// the recipient, so a typo never produces an empty name.
func lookupPerson(dir Directory, email string) Person {
	if dir != nil {
		if person, ok := dir.PersonByEmail(email); ok {
			if person.FullName == "" {
				person.FullName = email
			}
			return person
		}
	}
	return Person{Email: email, FullName: email}
}
