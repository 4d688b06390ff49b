package main

import (
	"bytes"
	"fmt"
	"os"
)

func validateOwnershipFile(repo string) error {
	warnings := &bytes.Buffer{}
	doc, err := loadDocument(repo, warnings)
	if err != nil {
		return err
	}

	rules := 0
	for _, section := range doc {
		rules += len(section.Rules)
	}
	fmt.Printf("%d section(s), %d rule(s)\n", len(doc), rules)

	if warnings.Len() > 0 {
		_, _ = warnings.WriteTo(os.Stderr)
		return fmt.Errorf("ownership file has discarded lines")
	}
	fmt.Println("ok")
	return nil
}
