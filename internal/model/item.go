package model

// Entry is a single to-do item as shown in the list.
// Text never changes after creation; only Done flips.
type Entry struct {
	ID   string
	Text string
	Done bool
}
