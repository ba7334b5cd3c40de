package main

import (
	"context"
	"io"

	"github.com/fwojciec/docent"
	"github.com/fwojciec/docent/chat"
	"github.com/fwojciec/docent/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	DB           *sqlite.DB
	Sessions     docent.SessionService
	Orchestrator *chat.Orchestrator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ask    AskCmd    `cmd:"" help:"Ask a question, or teach the assistant a URL or file"`
	List   ListCmd   `cmd:"" help:"List conversations, most recent first"`
	Show   ShowCmd   `cmd:"" help:"Show the messages of a conversation"`
	Delete DeleteCmd `cmd:"" help:"Delete a conversation"`
}

const (
	backendRemote = "remote"
	backendGemini = "gemini"
	extractRemote = "remote"
	extractLocal  = "local"
)

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Text      string  `arg:"" optional:"" help:"Question, or a URL to learn from"`
	Session   string  `short:"s" help:"Continue an existing conversation"`
	File      string  `short:"f" type:"path" help:"Upload a document to ask about"`
	Reference bool    `short:"r" help:"Treat domain-like text as a site to learn from"`
	Depth     int     `short:"d" default:"2" help:"Crawl depth when learning a site (1-3)"`
	Backend   string  `enum:"remote,gemini" default:"remote" help:"Question answering backend (remote, gemini)"`
	Extract   string  `enum:"remote,local" default:"remote" help:"Where uploaded files are read (remote, local)"`
	Model     string  `help:"Gemini model for the gemini backend and local image extraction"`
	URL       string  `name:"url" env:"DOCENT_URL" default:"http://localhost:8000" help:"Knowledge service address"`
	Rate      float64 `env:"DOCENT_RATE" default:"0" help:"Requests per second to the knowledge service (0 for unlimited)"`
	Verbose   bool    `short:"v" help:"Log gateway calls to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of conversations to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Conversation ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Conversation ID"`
	Force bool   `help:"Confirm deletion"`
}
