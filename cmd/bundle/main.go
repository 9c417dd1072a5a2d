package main

import (
	"context"
	"fmt"
	"os"

	"github.com/RahulKatariya/firebase-ios-sdk/bundle"
	"github.com/RahulKatariya/firebase-ios-sdk/model"
)

// bundle prints the contents of a document bundle file.

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: bundle <file>")
		os.Exit(1)
	}
	ctx := context.Background()

	file, err := os.Open(os.Args[1])
	if err != nil {
		panic(err)
	}
	defer file.Close()

	docs, err := bundle.Read(ctx, file)
	if err != nil {
		panic(err)
	}
	docs.ForEach(func(_ model.DocumentKey, doc model.MaybeDocument) {
		fmt.Println(doc)
	})
}
