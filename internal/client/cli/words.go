package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dbellanger/lexico/internal/client/api"
)

func (a *App) add(ctx context.Context) {
	word := &api.Word{}

	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Enter source text", &word.SourceText},
		{"Enter source language (e.g. fr)", &word.SourceLanguage},
		{"Enter target text", &word.TargetText},
		{"Enter target language (e.g. en)", &word.TargetLanguage},
	}

	for _, f := range fields {
		value, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		*f.dest = value
	}

	created, err := a.api.CreateWord(ctx, word)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	fmt.Printf("Added %s [%s] = %s [%s] (id %s)\n",
		created.SourceText, created.SourceLanguage,
		created.TargetText, created.TargetLanguage, created.ID)
}

func (a *App) list(ctx context.Context) {
	words, err := a.api.ListWords(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(words) == 0 {
		fmt.Println("The dictionary is empty. Use 'add' to create words.")
		return
	}

	for _, word := range words {
		fmt.Printf("%s  %s [%s] = %s [%s]\n",
			word.ID, word.SourceText, word.SourceLanguage,
			word.TargetText, word.TargetLanguage)
	}
}

func (a *App) edit(ctx context.Context) {
	id, err := getSimpleText(a.reader, "Enter word id to edit", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	word, err := a.api.GetWord(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	fields := []struct {
		prompt  string
		current string
		dest    *string
	}{
		{"Source text", word.SourceText, &word.SourceText},
		{"Source language", word.SourceLanguage, &word.SourceLanguage},
		{"Target text", word.TargetText, &word.TargetText},
		{"Target language", word.TargetLanguage, &word.TargetLanguage},
	}

	// empty input keeps the current value
	for _, f := range fields {
		value, err := getSimpleText(a.reader,
			fmt.Sprintf("%s [%s]", f.prompt, f.current), os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		if value != "" {
			*f.dest = value
		}
	}

	if err := a.api.UpdateWord(ctx, id, word); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	fmt.Println("Updated.")
}

func (a *App) delete(ctx context.Context) {
	id, err := getSimpleText(a.reader, "Enter word id to delete", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.api.DeleteWord(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	fmt.Println("Deleted.")
}
