package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"colloquy-hq/colloquy/pkg/analysis"
)

// OutputFormat represents the output format for analysis results.
type OutputFormat string

const (
	// FormatSummary is the human-readable summary (default).
	FormatSummary OutputFormat = "summary"
	// FormatJSON is machine-readable JSON.
	FormatJSON OutputFormat = "json"
)

// ParseFormat validates a format name from a flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatSummary, "":
		return FormatSummary, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want summary or json)", s)
	}
}

// WriteResult renders the analysis result to w in the requested format.
func WriteResult(w io.Writer, res *analysis.Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		return WriteSummary(w, res)
	}
}

// WriteSummary renders a human-readable analysis summary. Sections for
// unavailable components show the reason instead of being silently dropped.
func WriteSummary(w io.Writer, res *analysis.Result) error {
	var sb strings.Builder
	rule := strings.Repeat("=", 60)

	sb.WriteString(rule + "\n")
	sb.WriteString("ANALYSIS SUMMARY\n")
	sb.WriteString(rule + "\n")

	writeStats(&sb, res)
	writeSentiment(&sb, res)
	writeLexical(&sb, res)
	writeFlow(&sb, res)
	writeTopics(&sb, res)

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeStats(sb *strings.Builder, res *analysis.Result) {
	fmt.Fprintf(sb, "\nBASIC STATISTICS\n")
	fmt.Fprintf(sb, "  Total messages:   %d\n", res.Stats.TotalMessages)
	fmt.Fprintf(sb, "  Average length:   %.1f words\n", res.Stats.AverageMessageWords)
	if res.Stats.DurationSeconds > 0 {
		dur := time.Duration(res.Stats.DurationSeconds * float64(time.Second))
		fmt.Fprintf(sb, "  Duration:         %s\n", dur.Round(time.Second))
	}
	for _, speaker := range sortedKeys(res.Stats.PerSpeaker) {
		fmt.Fprintf(sb, "  %-16s  %d messages\n", speaker+":", res.Stats.PerSpeaker[speaker])
	}
}

func writeSentiment(sb *strings.Builder, res *analysis.Result) {
	fmt.Fprintf(sb, "\nSENTIMENT\n")
	if res.Sentiment == nil {
		writeUnavailable(sb, res, analysis.ComponentSentiment)
		return
	}
	fmt.Fprintf(sb, "  Overall mean:     %+.3f\n", res.Sentiment.OverallMean)
	for _, speaker := range sortedKeys(res.Sentiment.PerSpeaker) {
		sp := res.Sentiment.PerSpeaker[speaker]
		fmt.Fprintf(sb, "  %-16s  %+.3f over %d messages\n",
			speaker+":", sp.MeanCompound, sp.MessageCount)
	}
}

func writeLexical(sb *strings.Builder, res *analysis.Result) {
	fmt.Fprintf(sb, "\nWORD FREQUENCY\n")
	if res.Lexical == nil {
		writeUnavailable(sb, res, analysis.ComponentLexical)
		return
	}
	words := make([]string, 0, len(res.Lexical.TopWords))
	for _, wc := range res.Lexical.TopWords {
		words = append(words, wc.Word)
	}
	fmt.Fprintf(sb, "  Top words:        %s\n", strings.Join(words, ", "))
	fmt.Fprintf(sb, "  Unique words:     %d\n", res.Lexical.VocabularySize)
	fmt.Fprintf(sb, "  Total tokens:     %d\n", res.Lexical.TotalTokens)
}

func writeFlow(sb *strings.Builder, res *analysis.Result) {
	fmt.Fprintf(sb, "\nCONVERSATION FLOW\n")
	if res.Flow == nil {
		writeUnavailable(sb, res, analysis.ComponentFlow)
		return
	}
	fmt.Fprintf(sb, "  Turn changes:     %d\n", res.Flow.TurnChanges)
	fmt.Fprintf(sb, "  Engagement:       %.3f\n", res.Flow.EngagementScore)
	if res.Flow.Responses != nil {
		fmt.Fprintf(sb, "  Mean response:    %.1fs\n", res.Flow.Responses.Mean)
	}
}

func writeTopics(sb *strings.Builder, res *analysis.Result) {
	fmt.Fprintf(sb, "\nTOPICS\n")
	if res.Topics == nil {
		writeUnavailable(sb, res, analysis.ComponentTopics)
		return
	}
	if res.Topics.Reduced {
		fmt.Fprintf(sb, "  (topic count reduced to %d to fit the vocabulary)\n",
			res.Topics.TopicCount)
	}
	for _, topic := range res.Topics.Topics {
		words := make([]string, 0, len(topic.Words))
		for _, tw := range topic.Words {
			words = append(words, tw.Word)
		}
		fmt.Fprintf(sb, "  Topic %d:          %s\n", topic.ID+1, strings.Join(words, ", "))
	}
}

func writeUnavailable(sb *strings.Builder, res *analysis.Result, component string) {
	reason := "unavailable"
	if status, ok := res.Components[component]; ok && status.Reason != "" {
		reason = status.Reason
	}
	fmt.Fprintf(sb, "  Unavailable: %s\n", reason)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
