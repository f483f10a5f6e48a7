package compose

import (
	"strings"
	"testing"
)

type fakeDirectory struct {
	people map[string]Person
	status map[int]string
}

func (d fakeDirectory) PersonByEmail(email string) (Person, bool) {
	p, ok := d.people[strings.ToLower(email)]
	return p, ok
}

func (d fakeDirectory) StatusText(userID int) string {
	return d.status[userID]
}

func TestPlaceholder(t *testing.T) {
	dir := fakeDirectory{
		people: map[string]Person{
			"alice@example.com": {UserID: 1, Email: "alice@example.com", FullName: "Alice"},
			"bob@example.com":   {UserID: 2, Email: "bob@example.com", FullName: "Bob"},
		},
		status: map[int]string{1: "out sick"},
	}

	tests := []struct {
		name string
		opts PlaceholderOptions
		want string
	}{
		{name: "stream and topic", opts: PlaceholderOptions{MessageType: MessageTypeStream, Stream: "general", Topic: "lunch"}, want: "Message #general > lunch"},
		{name: "stream only", opts: PlaceholderOptions{MessageType: MessageTypeStream, Stream: "general"}, want: "Message #general"},
		{name: "stream without name", opts: PlaceholderOptions{MessageType: MessageTypeStream}, want: "Compose your message here"},
		{name: "single recipient with status", opts: PlaceholderOptions{MessageType: MessageTypePrivate, PrivateMessageRecipient: "alice@example.com"}, want: "Message Alice (out sick)"},
		{name: "single recipient without status", opts: PlaceholderOptions{MessageType: MessageTypePrivate, PrivateMessageRecipient: "bob@example.com"}, want: "Message Bob"},
		{name: "group", opts: PlaceholderOptions{MessageType: MessageTypePrivate, PrivateMessageRecipient: "alice@example.com,bob@example.com"}, want: "Message Alice, Bob"},
		{name: "unknown recipient", opts: PlaceholderOptions{MessageType: MessageTypePrivate, PrivateMessageRecipient: "carol@example.com"}, want: "Message carol@example.com"},
		{name: "empty", opts: PlaceholderOptions{}, want: "Compose your message here"},
		{name: "names are not escaped", opts: PlaceholderOptions{MessageType: MessageTypeStream, Stream: "<b>&", Topic: "100%"}, want: "Message #<b>& > 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Placeholder(tt.opts, dir, nil); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaceholderWithoutDirectory(t *testing.T) {
	got := Placeholder(PlaceholderOptions{PrivateMessageRecipient: " a@x.org , b@x.org "}, nil, nil)
	if got != "Message a@x.org, b@x.org" {
		t.Fatalf("got %q", got)
	}
}
