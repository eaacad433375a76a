// Package batch drives the cleaning pipeline over a directory of raw JSON
// documents, writing canonical output under the same filenames.
package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/leads-cli/internal/cleaner"
	"github.com/sells-group/leads-cli/internal/dedupe"
	"github.com/sells-group/leads-cli/internal/lead"
	"github.com/sells-group/leads-cli/internal/model"
)

// Processor applies clean + dedupe to every JSON document in a directory.
type Processor struct {
	cleaner     *cleaner.Cleaner
	keyFields   []string
	concurrency int
}

// New builds a Processor. Zero concurrency means one file at a time.
func New(c *cleaner.Cleaner, keyFields []string, concurrency int) *Processor {
	if len(keyFields) == 0 {
		keyFields = dedupe.DefaultKeys
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Processor{cleaner: c, keyFields: keyFields, concurrency: concurrency}
}

// Process cleans every *.json document under inDir into outDir. A document
// that fails to parse is skipped with a diagnostic; one bad file never
// aborts the batch. Files are independent, so they run concurrently up to
// the configured limit.
func (p *Processor) Process(ctx context.Context, inDir, outDir string) (*model.Run, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, eris.Wrapf(err, "batch: read input dir %s", inDir)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "batch: create output dir %s", outDir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}

	run := &model.Run{
		InputDir:  inDir,
		OutputDir: outDir,
		StartedAt: time.Now().UTC(),
		Files:     make([]model.FileResult, len(names)),
	}

	zap.L().Info("processing batch",
		zap.String("input_dir", inDir),
		zap.Int("files", len(names)),
		zap.Int("concurrency", p.concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return eris.Wrap(err, "batch: cancelled")
			}
			run.Files[i] = p.processFile(inDir, outDir, name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, fr := range run.Files {
		switch fr.Status {
		case model.FileProcessed:
			run.Processed++
			run.LeadsIn += fr.LeadsIn
			run.LeadsOut += fr.LeadsOut
			run.Duplicates += fr.Duplicates
		case model.FileSkipped:
			run.Skipped++
		}
	}
	run.FinishedAt = time.Now().UTC()

	zap.L().Info("batch complete",
		zap.Int("processed", run.Processed),
		zap.Int("skipped", run.Skipped),
		zap.Int("leads_out", run.LeadsOut),
		zap.Int("duplicates", run.Duplicates),
	)
	return run, nil
}

// processFile cleans one document. Parse failures are demoted to a skip so
// the rest of the batch continues.
func (p *Processor) processFile(inDir, outDir, name string) model.FileResult {
	log := zap.L().With(zap.String("file", name))

	data, err := os.ReadFile(filepath.Join(inDir, name))
	if err != nil {
		log.Warn("failed to read file, skipping", zap.Error(err))
		return model.FileResult{Name: name, Status: model.FileSkipped, Error: err.Error()}
	}

	raws, err := lead.DecodeDocument(data)
	if err != nil {
		log.Warn("failed to parse file, skipping", zap.Error(err))
		return model.FileResult{Name: name, Status: model.FileSkipped, Error: err.Error()}
	}

	cleaned := p.cleaner.CleanBatch(raws)
	deduped := dedupe.Dedupe(cleaned, p.keyFields)

	if err := WriteLeads(filepath.Join(outDir, name), deduped); err != nil {
		log.Warn("failed to write output, skipping", zap.Error(err))
		return model.FileResult{Name: name, Status: model.FileSkipped, Error: err.Error()}
	}

	log.Info("cleaned file",
		zap.Int("leads_in", len(raws)),
		zap.Int("leads_out", len(deduped)),
	)
	return model.FileResult{
		Name:       name,
		Status:     model.FileProcessed,
		LeadsIn:    len(raws),
		LeadsOut:   len(deduped),
		Duplicates: len(cleaned) - len(deduped),
	}
}

// WriteLeads persists leads as a JSON array with 2-space indentation.
// Non-ASCII characters stay verbatim and an empty batch still writes [].
func WriteLeads(path string, leads []lead.Lead) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if leads == nil {
		leads = []lead.Lead{}
	}
	if err := enc.Encode(leads); err != nil {
		return eris.Wrapf(err, "batch: encode %s", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return eris.Wrapf(err, "batch: write %s", path)
	}
	return nil
}
