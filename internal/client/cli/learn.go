package cli

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/dbellanger/lexico/internal/client/api"
)

const quizDistractorCount = 3

// quizRound is one multiple-choice question: the word being asked and the
// shuffled answer options, exactly one of which is correct.
type quizRound struct {
	word    *api.Word
	options []string
	answer  int
}

// newQuizRound builds the options for word: its translation plus up to three
// distractor translations drawn from other words sharing the target language.
// When the pool is too small the remaining slots are filled with placeholder
// answers, matching the original application's behavior.
func newQuizRound(word *api.Word, pool []*api.Word, rnd *rand.Rand) quizRound {
	distractors := make([]string, 0, quizDistractorCount)
	for _, other := range pool {
		if len(distractors) == quizDistractorCount {
			break
		}
		if other.ID != word.ID && other.TargetLanguage == word.TargetLanguage {
			distractors = append(distractors, other.TargetText)
		}
	}
	for len(distractors) < quizDistractorCount {
		distractors = append(distractors, fmt.Sprintf("Answer %d", len(distractors)+1))
	}

	options := append([]string{word.TargetText}, distractors...)
	rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	round := quizRound{word: word, options: options}
	for i, option := range options {
		if option == word.TargetText {
			round.answer = i
			break
		}
	}
	return round
}

// checkCopyAnswer compares the typed translation against the expected one,
// ignoring case and surrounding whitespace.
func checkCopyAnswer(input, target string) bool {
	return strings.EqualFold(strings.TrimSpace(input), strings.TrimSpace(target))
}

// scoreMessage summarizes a finished session the way the original
// application graded it.
func scoreMessage(score, total int) string {
	if total == 0 {
		return "No words to practice."
	}
	percentage := score * 100 / total

	var verdict string
	switch {
	case percentage >= 90:
		verdict = "Excellent!"
	case percentage >= 70:
		verdict = "Well done!"
	case percentage >= 50:
		verdict = "Not bad!"
	default:
		verdict = "Keep practicing!"
	}

	return fmt.Sprintf("%s %d correct answers out of %d words (%d%%)", verdict, score, total, percentage)
}

func (a *App) learn(ctx context.Context) {
	words, err := a.api.ListWords(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if len(words) == 0 {
		fmt.Println("The dictionary is empty. Use 'add' to create words first.")
		return
	}

	mode, err := getSimpleText(a.reader, "Choose a mode: (q)uiz or (c)opy", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	rnd := rand.New(rand.NewSource(rand.Int63()))
	rnd.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	var score int
	switch strings.ToLower(mode) {
	case "q", "quiz":
		score = a.runQuiz(words, rnd)
	case "c", "copy":
		score = a.runCopy(words)
	default:
		fmt.Println("Unknown mode:", mode)
		return
	}

	fmt.Println(scoreMessage(score, len(words)))
}

func (a *App) runQuiz(words []*api.Word, rnd *rand.Rand) int {
	score := 0

	for i, word := range words {
		round := newQuizRound(word, words, rnd)

		fmt.Printf("\n[%d/%d] %s [%s]\n", i+1, len(words), word.SourceText, word.SourceLanguage)
		for j, option := range round.options {
			fmt.Printf("  %d) %s\n", j+1, option)
		}

		input, err := getSimpleText(a.reader, "Your answer (number)", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return score
		}

		choice, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil && choice-1 == round.answer {
			fmt.Println("Correct!")
			score++
		} else {
			fmt.Printf("Incorrect. The answer was: %s\n", word.TargetText)
		}
	}

	return score
}

func (a *App) runCopy(words []*api.Word) int {
	score := 0

	for i, word := range words {
		fmt.Printf("\n[%d/%d] %s [%s]\n", i+1, len(words), word.SourceText, word.SourceLanguage)

		input, err := getSimpleText(a.reader, "Type the translation", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return score
		}

		if checkCopyAnswer(input, word.TargetText) {
			fmt.Println("Correct!")
			score++
		} else {
			fmt.Printf("Incorrect. The answer was: %s\n", word.TargetText)
		}
	}

	return score
}
