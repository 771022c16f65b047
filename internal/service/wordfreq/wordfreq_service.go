package wordfreq

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	model "wordrank/internal/model/wordfreq"

	"go.uber.org/zap"
)

// Report is the ranking together with statistics about the scanned lines
type Report struct {
	K              int               `json:"k"`
	Words          []model.WordCount `json:"words"`
	TotalTokens    int64             `json:"total_tokens"`
	DistinctTokens int               `json:"distinct_tokens"`
	Lines          int               `json:"lines"`
}

// WordFreqService ranks words for the HTTP, MCP and command line front ends
type WordFreqService struct {
	defaultK int
	logger   *zap.Logger
}

// NewWordFreqService creates a new word frequency service
func NewWordFreqService(defaultK int, logger *zap.Logger) *WordFreqService {
	if defaultK < 0 {
		defaultK = 0
	}
	return &WordFreqService{
		defaultK: defaultK,
		logger:   logger,
	}
}

// ResolveK returns *k, or the default when k is nil
func (s *WordFreqService) ResolveK(k *int) int {
	if k == nil {
		return s.defaultK
	}
	return *k
}

// TopWords returns the k most frequent words across lines
func (s *WordFreqService) TopWords(lines []string, k int) []model.WordCount {
	return s.Analyze(lines, k).Words
}

// Analyze ranks the words of lines and reports token statistics
func (s *WordFreqService) Analyze(lines []string, k int) *Report {
	if k < 0 {
		k = 0
	}

	tokenizer := NewASCIITokenizer()
	freq := CountWordsWith(tokenizer, lines)
	report := &Report{
		K:              k,
		Words:          SelectTopK(freq, k),
		TotalTokens:    freq.Total(),
		DistinctTokens: freq.Distinct(),
		Lines:          len(lines),
	}

	s.logger.Debug("Ranked words",
		zap.String("tokenizer", tokenizer.Name()),
		zap.Int("lines", report.Lines),
		zap.Int("k", k),
		zap.Int64("total_tokens", report.TotalTokens),
		zap.Int("distinct_tokens", report.DistinctTokens),
		zap.Int("returned", len(report.Words)),
	)
	return report
}

// ReadLines reads r line by line. Line length is unbounded; a trailing
// "\r" is dropped with the newline.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read lines: %w", err)
		}
	}
}

// AnalyzeReader reads all lines from r and ranks them
func (s *WordFreqService) AnalyzeReader(r io.Reader, k int) (*Report, error) {
	lines, err := ReadLines(r)
	if err != nil {
		s.logger.Error("Failed to read input", zap.Error(err))
		return nil, err
	}
	return s.Analyze(lines, k), nil
}
