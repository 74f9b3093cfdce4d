package builder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlforge/builder"
	"github.com/katalvlaran/lvlforge/core"
)

// ExampleNew demonstrates schema-driven staging with the Generic builder:
// declare the spec, chain setters, seal the immutable value.
func ExampleNew() {
	// 1) Declare the value shape once:
	spec, _ := core.NewSpec("Person", []core.FieldDecl{
		core.Field[string]("name", core.Required()),
		core.Field[int]("age", core.Required()),
		core.Field[string]("nickname", core.Default("")),
	})

	// 2) Stage and seal:
	v, err := builder.New(spec).
		Set("name", "Ann").
		Set("age", 30).
		Build()
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	// 3) The optional field sits at its declared default:
	fmt.Println(v)

	// 4) A builder that skips a required field reports exactly what is missing:
	_, err = builder.New(spec).Set("age", 30).Build()
	var report *builder.ValidationError
	if errors.As(err, &report) {
		fmt.Println("missing:", report.Missing)
	}

	// Output:
	// Person{name=Ann, age=30, nickname=}
	// missing: [name]
}
