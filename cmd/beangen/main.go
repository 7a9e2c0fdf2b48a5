// Command beangen rewrites the generated regions of Go bean source files and
// describes the beans they declare.
//
//	beangen generate ./...            rewrite every bean under the directory
//	beangen generate --check model    report files whose region is stale
//	beangen describe address.go       print the properties of a bean
package main

import (
	"context"
	"os"

	"goa.design/clue/log"
)

func main() {
	ctx := log.Context(context.Background(), log.WithFormat(log.FormatTerminal))
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
