package services

import (
	"sort"
	"strings"
	"sync"

	"paytrack/constants"
	"paytrack/dto"
	"paytrack/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeInput strips accents and case for matching
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// CalculateSimilarity returns the levenshtein similarity of two strings in [0,1]
func CalculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// ParsePaymentStatusQuery maps free-text query words onto a payment status.
// Returns "" when the query names no status.
func ParsePaymentStatusQuery(query string) string {
	pendingKeywords := []string{"pending", "unpaid", "due", "overdue", "outstanding"}
	completedKeywords := []string{"completed", "paid", "settled", "done"}

	normalizedQuery := NormalizeInput(query)

	pendingMatcher := createMatcher(pendingKeywords)
	completedMatcher := createMatcher(completedKeywords)

	pendingMatch := pendingMatcher.Closest(normalizedQuery)
	completedMatch := completedMatcher.Closest(normalizedQuery)

	if pendingMatch != "" && strings.Contains(normalizedQuery, pendingMatch) {
		return constants.PaymentStatusPending
	}
	if completedMatch != "" && strings.Contains(normalizedQuery, completedMatch) {
		return constants.PaymentStatusCompleted
	}

	return ""
}

// CalculateScore rates how well a customer matches the query
func CalculateScore(query string, customer models.Customer) int {
	normalizedQuery := NormalizeInput(query)
	score := 0

	normalizedName := NormalizeInput(customer.Name)
	similarity := CalculateSimilarity(normalizedQuery, normalizedName)
	if normalizedName == normalizedQuery {
		score += 25
	} else if strings.Contains(normalizedQuery, normalizedName) || strings.Contains(normalizedName, normalizedQuery) {
		score += 20
	} else if similarity > 0.7 {
		score += 15
	}

	if customer.Contact != "" && strings.Contains(normalizedQuery, NormalizeInput(customer.Contact)) {
		score += 15
	}

	if status := ParsePaymentStatusQuery(normalizedQuery); status != "" && status == customer.PaymentStatus {
		score += 10
	}

	return score
}

// FilterAndScoreCustomers scores every customer concurrently and returns the
// matches sorted by descending score.
func FilterAndScoreCustomers(query string, customers []models.Customer) []dto.ScoredCustomer {
	var filtered []dto.ScoredCustomer
	scoreCh := make(chan dto.ScoredCustomer, len(customers))
	var wg sync.WaitGroup

	for _, customer := range customers {
		wg.Add(1)
		go func(customer models.Customer) {
			defer wg.Done()
			score := CalculateScore(query, customer)
			if score > 0 {
				scoreCh <- dto.ScoredCustomer{
					Customer: customer,
					Score:    score,
				}
			}
		}(customer)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scored := range scoreCh {
		filtered = append(filtered, scored)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})
	return filtered
}
