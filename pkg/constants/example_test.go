package constants_test

import (
	"fmt"

	"github.com/agentstation/lintbridge/pkg/constants"
)

// Example shows the formatter presets in the order they are appended.
func Example() {
	for _, name := range constants.FormatterPresets() {
		fmt.Println(name)
	}

	// Output:
	// prettier
	// prettier/@typescript-eslint
}
