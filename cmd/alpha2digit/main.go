// Command alpha2digit rewrites number words in text files as digits.
//
//	alpha2digit -lang fr [-threshold 3] [-workers 4] [-stats] [files...]
//
// Without file arguments the text is read from stdin. Converted files are
// written to stdout in argument order; diagnostics go to stderr.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/npillmayer/schuko/tracing"

	"github.com/allo-media/text2num/lang"
	"github.com/allo-media/text2num/numtext"
	"github.com/allo-media/text2num/tokenizer"
)

const (
	chunkSize      = 4 << 20 // 4 MB per read chunk
	defaultWorkers = 4
	bytesToMBShift = 20
)

// tracer writes to trace with key 'text2num.cli'
func tracer() tracing.Trace {
	return tracing.Select("text2num.cli")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	lang      string
	threshold float64
	workers   int
	stats     bool
	files     []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("alpha2digit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.lang, "lang", "en", "language of the input (one of "+fmt.Sprint(lang.Supported())+")")
	fs.Float64Var(&opts.threshold, "threshold", numtext.DefaultThreshold, "isolated cardinals below this value stay spelled out")
	fs.IntVar(&opts.workers, "workers", defaultWorkers, "number of files converted concurrently")
	fs.BoolVar(&opts.stats, "stats", false, "print per-file number, word and sentence counts to stderr")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.workers < 1 {
		return opts, fmt.Errorf("alpha2digit: -workers must be positive, got %d", opts.workers)
	}
	opts.files = fs.Args()
	return opts, nil
}

// counts are the -stats figures of one input. Sentences are counted per
// chunk, so one running across a chunk boundary counts twice.
type counts struct {
	numbers   int
	words     int
	sentences int
}

func (c *counts) add(o counts) {
	c.numbers += o.numbers
	c.words += o.words
	c.sentences += o.sentences
}

func (c counts) String() string {
	return fmt.Sprintf("%d numbers, %d words, %d sentences", c.numbers, c.words, c.sentences)
}

// result is the outcome of one input.
type result struct {
	out   []byte
	stats counts
	err   error
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	g, err := lang.Get(opts.lang)
	if err != nil {
		fmt.Fprintf(stderr, "alpha2digit: %v\n", err)
		return 1
	}
	conv := &converter{g: g, threshold: opts.threshold, stats: opts.stats}

	if len(opts.files) == 0 {
		res := conv.convert(stdin)
		if res.err != nil {
			fmt.Fprintf(stderr, "alpha2digit: stdin: %v\n", res.err)
			return 1
		}
		_, _ = stdout.Write(res.out)
		if opts.stats {
			fmt.Fprintf(stderr, "stdin: %s\n", res.stats)
		}
		return 0
	}

	start := time.Now()
	results := make([]result, len(opts.files))
	semaphore := make(chan struct{}, opts.workers)
	var wg sync.WaitGroup
	for i, path := range opts.files {
		semaphore <- struct{}{}
		wg.Go(func() {
			defer func() { <-semaphore }()
			results[i] = conv.convertFile(path)
		})
	}
	wg.Wait()

	status := 0
	for i, res := range results {
		if res.err != nil {
			fmt.Fprintf(stderr, "alpha2digit: %s: %v\n", opts.files[i], res.err)
			status = 1
			continue
		}
		_, _ = stdout.Write(res.out)
		if opts.stats {
			fmt.Fprintf(stderr, "%s: %s\n", opts.files[i], res.stats)
		}
	}
	tracer().Infof("converted %d files in %s", len(opts.files), time.Since(start).Round(time.Millisecond))
	return status
}

// converter rewrites inputs with one grammar. It is shared by all workers.
type converter struct {
	g         *lang.Grammar
	threshold float64
	stats     bool
}

func (c *converter) convertFile(path string) result {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return result{err: err}
	}
	defer func() { _ = f.Close() }()

	if info, err := f.Stat(); err == nil {
		tracer().Debugf("START %s (%d MB)", path, info.Size()>>bytesToMBShift)
	}
	return c.convert(f)
}

// convert reads r in chunks cut after the last newline, so no number phrase
// is split between two chunks.
func (c *converter) convert(r io.Reader) result {
	var res result
	var out bytes.Buffer
	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := r.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			if idx := bytes.LastIndexByte(leftover, '\n'); idx >= 0 {
				chunk := leftover[:idx+1]
				res.stats.add(c.convertChunk(&out, string(chunk)))
				leftover = append([]byte(nil), leftover[idx+1:]...)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.err = err
			return res
		}
	}
	if len(leftover) > 0 {
		res.stats.add(c.convertChunk(&out, string(leftover)))
	}
	res.out = out.Bytes()
	return res
}

// convertChunk writes the converted chunk to out and returns its counts
// when statistics are requested.
func (c *converter) convertChunk(out *bytes.Buffer, chunk string) counts {
	out.WriteString(numtext.Replace(chunk, c.g, c.threshold))
	if !c.stats {
		return counts{}
	}
	var n counts
	n.words = len(tokenizer.Words(chunk))
	for _, s := range tokenizer.Sentences(chunk) {
		if strings.TrimSpace(s) != "" {
			n.sentences++
		}
	}
	occs, err := numtext.FindNumbers(numtext.Tokenize(chunk, c.g.Tag()), c.g.ID(), c.threshold)
	if err != nil {
		tracer().Errorf("counting numbers: %v", err)
		return n
	}
	n.numbers = len(occs)
	return n
}
