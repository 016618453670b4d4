// Command pdfsum summarizes PDF and text files from the command line.
//
//	pdfsum [-local] [-gateway URL] [-explain] [-concurrency N] FILE...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"pdf-summarizer/internal/config"
	"pdf-summarizer/internal/domain"
	"pdf-summarizer/internal/gateway"
	"pdf-summarizer/internal/service"
	"pdf-summarizer/internal/summarizer"
	"pdf-summarizer/pkg/logger"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: .env file could not be loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	local       bool
	gatewayURL  string
	explain     bool
	concurrency int
	files       []string
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("pdfsum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.local, "local", false, "summarize offline without calling the gateway")
	fs.StringVar(&opts.gatewayURL, "gateway", "", "summarization proxy URL (default $GATEWAY_URL)")
	fs.BoolVar(&opts.explain, "explain", false, "print sentence scores and the selection budget")
	fs.IntVar(&opts.concurrency, "concurrency", 4, "files summarized in parallel")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: pdfsum [-local] [-gateway URL] [-explain] [-concurrency N] FILE...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.files = fs.Args()
	if len(opts.files) == 0 {
		fs.Usage()
		return nil, fmt.Errorf("no input files")
	}
	if opts.concurrency < 1 {
		opts.concurrency = 1
	}
	return opts, nil
}

// fileResult is the output for one input file.
type fileResult struct {
	name    string
	text    *domain.ExtractedText
	summary domain.SummaryResult
	detail  *summarizer.Result
	err     error
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return 2
	}

	cfg := config.NewConfig()
	appLogger := logger.NewWithWriter(stderr, cfg.GetLogLevel(), "console")

	sumOpts, err := config.LoadSummarizerOptions(cfg.GetSummarizerConfigPath())
	if err != nil {
		appLogger.Warn("Summarizer config ignored, using defaults", "path", cfg.GetSummarizerConfigPath(), "error", err)
	}
	local := summarizer.New(sumOpts, appLogger)

	var remote domain.SummaryGateway
	if !opts.local {
		gwCfg := cfg.GetGatewayConfig()
		if opts.gatewayURL != "" {
			gwCfg.BaseURL = opts.gatewayURL
		}
		remote = gateway.NewClient(gwCfg, local, appLogger)
	}
	pdf := service.NewPDFProcessor(cfg.GetPDFConfig(), appLogger)

	results := make([]fileResult, len(opts.files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency)
	for i, path := range opts.files {
		g.Go(func() error {
			results[i] = summarizeFile(gctx, path, pdf, local, remote, opts.explain)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(stderr, "%s: %v\n", res.name, res.err)
			continue
		}
		printResult(stdout, res, len(results) > 1)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func summarizeFile(ctx context.Context, path string, pdf *service.PDFProcessor, local *summarizer.Summarizer, remote domain.SummaryGateway, explain bool) fileResult {
	res := fileResult{name: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.err = err
		return res
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		res.text, err = pdf.ExtractText(ctx, data)
	} else {
		res.text, err = service.ExtractPlainText(filepath.Base(path), data)
	}
	if err != nil {
		res.err = err
		return res
	}

	if remote != nil {
		res.summary = remote.SummarizeWithSource(ctx, res.text.Content)
	} else {
		res.summary = domain.SummaryResult{Summary: local.Summarize(res.text.Content), Source: domain.SummarySourceLocal}
	}

	if explain {
		res.detail, err = local.SummarizeDetailed(res.text.Content)
		if err != nil {
			res.err = err
		}
	}
	return res
}

func printResult(w io.Writer, res fileResult, withHeader bool) {
	if withHeader {
		fmt.Fprintf(w, "==> %s (%s) <==\n", res.name, res.summary.Source)
	}
	fmt.Fprintln(w, res.summary.Summary)

	if res.detail == nil {
		return
	}
	sel := res.detail.Selection
	fmt.Fprint(w, "\nlocal ranking")
	if res.summary.Source != domain.SummarySourceLocal {
		fmt.Fprintf(w, " (the summary above came from the %s proxy)", res.summary.Source)
	}
	fmt.Fprintf(w, "\nbudget: %d/%d runes, %d of %d sentences selected", sel.CurrentLength, sel.Target, len(sel.Sentences), len(res.detail.Sentences))
	if sel.Overridden {
		fmt.Fprint(w, " (minimum sentence count applied)")
	}
	fmt.Fprintln(w)

	chosen := make(map[int]bool, len(sel.Sentences))
	for _, s := range sel.Sentences {
		chosen[s.Position] = true
	}
	for _, s := range res.detail.Sentences {
		mark := " "
		if chosen[s.Position] {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %3d  score=%.3f freq=%.3f pos=%.1f len=%.3f  %s\n",
			mark, s.Position, s.Score, s.FrequencyScore, s.PositionScore, s.LengthScore, preview(s.Text, 60))
	}
}

func preview(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "..."
}
