package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/halwyn/gutlog/internal/models"
)

const (
	// A bad outcome is pain at or above this level, or an abnormal
	// bristol type (too hard or too watery).
	badPainThreshold = 7

	// Lookahead window for attributing a later bad outcome back to an
	// earlier entry's foods and stress level.
	lookaheadWindow = 24 * time.Hour

	minFoodSampleCount = 3
	maxTopFoods        = 5

	highStressThreshold = 6
	// The high bucket needs more than this many samples before a stress
	// correlation is reported. The low bucket has no minimum, see the
	// low-bucket test.
	minHighStressSamples = 2

	stressInsightGapPoints = 20.0
	foodInsightMinScore    = 50.0
)

var abnormalBristolTypes = map[int]bool{1: true, 2: true, 6: true, 7: true}

// FoodScore is one candidate trigger food and the share of its occurrences
// followed by a bad outcome.
type FoodScore struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	SampleCount int     `json:"sampleCount"`
	BadCount    int     `json:"badCount"`
}

type StressCorrelation struct {
	HighScore   float64 `json:"highScore"`
	LowScore    float64 `json:"lowScore"`
	HighSamples int     `json:"highSamples"`
	LowSamples  int     `json:"lowSamples"`
	HighBad     int     `json:"highBad"`
	LowBad      int     `json:"lowBad"`
}

// CorrelationResult is the full analysis output. Absence of signal is a
// normal state: zero entries or nothing above threshold yields
// HasEnoughData=false, never an error.
type CorrelationResult struct {
	TopFoods      []FoodScore        `json:"topFoods"`
	Stress        *StressCorrelation `json:"stressResult"`
	HasEnoughData bool               `json:"hasEnoughData"`
}

// Insight is a human-readable finding derived from the correlation result.
type Insight struct {
	Kind       string     `json:"kind"`
	Message    string     `json:"message"`
	Multiplier int        `json:"multiplier,omitempty"`
	Food       *FoodScore `json:"food,omitempty"`
}

const (
	InsightKindStress      = "stress"
	InsightKindTriggerFood = "trigger_food"
)

// AnalyzeCorrelations scores candidate triggers (foods, stress level)
// against bad outcomes in the following 24 hours. The recompute is always
// full; the dataset is one person's lifetime log.
func AnalyzeCorrelations(entries []models.LogEntry) CorrelationResult {
	sorted := sortedByTimestamp(entries)
	hasBadOutcome := markBadOutcomes(sorted)

	topFoods := scoreFoods(sorted, hasBadOutcome)
	stress := scoreStress(sorted, hasBadOutcome)

	return CorrelationResult{
		TopFoods:      topFoods,
		Stress:        stress,
		HasEnoughData: len(topFoods) > 0 || stress != nil,
	}
}

// IsBadOutcome reports whether the entry itself records an adverse event:
// pain level >= 7 or a bristol type in {1,2,6,7}.
func IsBadOutcome(entry models.LogEntry) bool {
	if entry.PainLevel != nil && *entry.PainLevel >= badPainThreshold {
		return true
	}
	if entry.BristolType != nil && abnormalBristolTypes[*entry.BristolType] {
		return true
	}
	return false
}

func sortedByTimestamp(entries []models.LogEntry) []models.LogEntry {
	sorted := make([]models.LogEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// markBadOutcomes classifies every entry, attributing a later bad outcome
// inside the lookahead window back to the earlier entry. Entries are
// sorted, so the scan is a single forward walk that stops at the first
// entry outside the window. Attribution is not food-specific: any bad
// outcome within the window marks the earlier entry wholesale.
func markBadOutcomes(sorted []models.LogEntry) []bool {
	marks := make([]bool, len(sorted))
	for index, entry := range sorted {
		if IsBadOutcome(entry) {
			marks[index] = true
			continue
		}
		for next := index + 1; next < len(sorted); next++ {
			if sorted[next].Timestamp.Sub(entry.Timestamp) > lookaheadWindow {
				break
			}
			if IsBadOutcome(sorted[next]) {
				marks[index] = true
				break
			}
		}
	}
	return marks
}

// scoreFoods accumulates per-food occurrence counts keyed on the trimmed
// name. Case is preserved for display; case-insensitive matching is a
// presentation concern, not done here.
func scoreFoods(sorted []models.LogEntry, hasBadOutcome []bool) []FoodScore {
	totals := make(map[string]int)
	bads := make(map[string]int)

	for index, entry := range sorted {
		for _, rawName := range entry.Foods {
			name := strings.TrimSpace(rawName)
			if name == "" {
				continue
			}
			totals[name]++
			if hasBadOutcome[index] {
				bads[name]++
			}
		}
	}

	scores := make([]FoodScore, 0, len(totals))
	for name, total := range totals {
		if total < minFoodSampleCount {
			continue
		}
		scores = append(scores, FoodScore{
			Name:        name,
			Score:       float64(bads[name]) / float64(total) * 100,
			SampleCount: total,
			BadCount:    bads[name],
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		if scores[i].SampleCount != scores[j].SampleCount {
			return scores[i].SampleCount > scores[j].SampleCount
		}
		return scores[i].Name < scores[j].Name
	})

	if len(scores) > maxTopFoods {
		scores = scores[:maxTopFoods]
	}
	return scores
}

// scoreStress buckets entries carrying a stress level into high (>=6) and
// low (<6). Only the high bucket is gated on sample size.
func scoreStress(sorted []models.LogEntry, hasBadOutcome []bool) *StressCorrelation {
	result := StressCorrelation{}
	for index, entry := range sorted {
		if entry.StressLevel == nil {
			continue
		}
		if *entry.StressLevel >= highStressThreshold {
			result.HighSamples++
			if hasBadOutcome[index] {
				result.HighBad++
			}
		} else {
			result.LowSamples++
			if hasBadOutcome[index] {
				result.LowBad++
			}
		}
	}

	if result.HighSamples <= minHighStressSamples {
		return nil
	}

	result.HighScore = bucketScore(result.HighBad, result.HighSamples)
	result.LowScore = bucketScore(result.LowBad, result.LowSamples)
	return &result
}

func bucketScore(bad int, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(bad) / float64(total) * 100
}

// BuildInsights turns the analysis into the presentation-facing findings:
// a stress insight when high-stress days score more than 20 percentage
// points above low-stress days, and a trigger-food insight when the top
// food scores above 50.
func BuildInsights(result CorrelationResult) []Insight {
	insights := make([]Insight, 0, 2)

	if stress := result.Stress; stress != nil && stress.HighScore > stress.LowScore+stressInsightGapPoints {
		multiplier := int(math.Round(stress.HighScore / math.Max(stress.LowScore, 1)))
		insights = append(insights, Insight{
			Kind:       InsightKindStress,
			Message:    fmt.Sprintf("Symptoms are about %dx more likely within a day of high stress.", multiplier),
			Multiplier: multiplier,
		})
	}

	if len(result.TopFoods) > 0 && result.TopFoods[0].Score > foodInsightMinScore {
		top := result.TopFoods[0]
		insights = append(insights, Insight{
			Kind:    InsightKindTriggerFood,
			Message: fmt.Sprintf("%s was followed by symptoms in %.0f%% of the %d times you logged it.", top.Name, top.Score, top.SampleCount),
			Food:    &top,
		})
	}

	return insights
}
