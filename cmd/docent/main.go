package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docent"
	"github.com/fwojciec/docent/chat"
	"github.com/fwojciec/docent/gemini"
	"github.com/fwojciec/docent/htmltomarkdown"
	docenthttp "github.com/fwojciec/docent/http"
	"github.com/fwojciec/docent/pdf"
	"github.com/fwojciec/docent/progress"
	"github.com/fwojciec/docent/readability"
	docslog "github.com/fwojciec/docent/slog"
	"github.com/fwojciec/docent/sqlite"
	"github.com/fwojciec/docent/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// GeminiAPIKey enables the gemini backend and image extraction.
	GeminiAPIKey string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SessionService docent.SessionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docent"),
		kong.Description("Ask questions about documentation, teaching the assistant new sites and files as you go."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docent --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCENT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	var logger *slog.Logger
	if cmd == "ask" && cli.Ask.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	m.SessionService = sqlite.NewSessionService(m.DB)
	if logger != nil {
		m.SessionService = docslog.NewLoggingSessionService(m.SessionService, logger)
	}
	deps.DB = m.DB
	deps.Sessions = m.SessionService

	if cmd == "ask" {
		orch, err := m.newOrchestrator(ctx, &cli.Ask, logger, stderr)
		if err != nil {
			return err
		}
		deps.Orchestrator = orch
	}

	return kongCtx.Run(deps)
}

// newOrchestrator wires the gateways selected by the ask flags.
func (m *Main) newOrchestrator(ctx context.Context, c *AskCmd, logger *slog.Logger, stderr io.Writer) (*chat.Orchestrator, error) {
	var opts []docenthttp.Option
	if c.Rate > 0 {
		opts = append(opts, docenthttp.WithRateLimit(c.Rate))
	}
	remote := docenthttp.NewClient(c.URL, opts...)

	var client *genai.Client
	if m.GeminiAPIKey != "" {
		var err error
		client, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  m.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
	}

	var asker docent.Asker = remote
	if c.Backend == backendGemini {
		if client == nil {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		asker = gemini.NewAsker(client, c.Model)
	}

	var extractor docent.Extractor = remote
	if c.Extract == extractLocal {
		extractor = newLocalExtractor(client, c.Model)
	}

	var ingester docent.Ingester = remote
	if logger != nil {
		ingester = docslog.NewLoggingIngester(ingester, logger)
		asker = docslog.NewLoggingAsker(asker, logger)
		extractor = docslog.NewLoggingExtractor(extractor, logger)
	}

	return chat.NewOrchestrator(m.SessionService, extractor, ingester, asker, progress.NewReporter()), nil
}

// newLocalExtractor routes uploads to in-process extractors by file type.
// Images are only understood when a Gemini client is available.
func newLocalExtractor(client *genai.Client, model string) *docent.ExtractorMux {
	mux := docent.NewExtractorMux(docent.TextExtractor{})
	mux.Register(pdf.NewExtractor(), ".pdf")
	conv := htmltomarkdown.NewConverter()
	mux.Register(docent.ExtractorChain{
		trafilatura.NewExtractor(conv),
		readability.NewExtractor(conv),
	}, trafilatura.Extensions...)
	if client != nil {
		mux.Register(gemini.NewExtractor(client, model), gemini.ImageExtensions...)
	}
	return mux
}

func defaultDBPath() string {
	if path := os.Getenv("DOCENT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docent.db"
	}
	dir := filepath.Join(home, ".docent")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docent.db")
}
