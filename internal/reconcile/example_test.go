package reconcile_test

import (
	"fmt"

	"github.com/dshills/blocksel/internal/document"
	"github.com/dshills/blocksel/internal/reconcile"
)

func ExampleReconcile() {
	snap := document.MustNew([]document.Block{
		{Key: "intro", Text: "Hello", Tree: document.SingleLeafTree("Hello", document.UnitRune)},
		{Key: "body", Text: "world", Tree: document.SingleLeafTree("world", document.UnitRune)},
	}, nil)

	// Caret dragged from "body" offset 3 back into "intro" offset 1.
	sel, err := reconcile.Reconcile(snap, "body-0-0", 3, "intro-0-0", 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sel)
	// Output: Anchor: body:3, Focus: intro:1, Is Backward: true, Has Focus: false
}
