package tutor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Speaker identifies who wrote a transcript message.
type Speaker string

const (
	SpeakerStudent Speaker = "student"
	SpeakerTutor   Speaker = "tutor"
)

// Message is one entry of a chat transcript.
type Message struct {
	ID      int
	Speaker Speaker
	Text    string
	Failed  bool
	At      time.Time
}

// Transcript is an ordered chat log that always begins with the greeting.
// It is safe for concurrent use.
type Transcript struct {
	mu       sync.Mutex
	id       string
	messages []Message
	now      func() time.Time
}

// NewTranscript starts a conversation with a fresh id.
func NewTranscript() *Transcript {
	t := &Transcript{id: uuid.New().String(), now: time.Now}
	t.append(SpeakerTutor, Greeting, false)
	return t
}

// ID identifies the conversation in logs.
func (t *Transcript) ID() string {
	return t.id
}

// AddQuestion records a student message.
func (t *Transcript) AddQuestion(text string) Message {
	return t.append(SpeakerStudent, text, false)
}

// AddReply records the outcome of an Ask. A non-nil err records the
// generic failure message instead of reply.
func (t *Transcript) AddReply(reply string, err error) Message {
	if err != nil {
		return t.append(SpeakerTutor, FailureMessage, true)
	}
	return t.append(SpeakerTutor, reply, false)
}

// Messages returns a copy of the log.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages, greeting included.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

func (t *Transcript) append(speaker Speaker, text string, failed bool) Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	m := Message{
		ID:      len(t.messages) + 1,
		Speaker: speaker,
		Text:    text,
		Failed:  failed,
		At:      t.now(),
	}
	t.messages = append(t.messages, m)
	return m
}
