package mixo_test

import (
	"fmt"

	"github.com/mixo-go/mixo/pkg/mixo"
)

func ExampleMixer() {
	m := mixo.New()

	speaker := mixo.Object{"sound": "woof"}
	speaker["speak"] = mixo.Func(func(self mixo.Object, _ ...any) any {
		return self["sound"]
	})

	dog := mixo.Object{"name": "rex"}

	err := m.Extend(dog).WithDelegate(speaker, "speak").Err()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	speak := dog["speak"].(mixo.Func)
	fmt.Println(dog["name"], "says", speak(dog))

	// Output:
	// rex says woof
}

func ExampleMixer_negation() {
	m := mixo.New()

	config := mixo.Object{"host": "localhost", "port": 8080, "password": "s3cret"}
	public := mixo.Object{}

	if err := m.Extend(public).With(config, "!password").Err(); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(public["host"], public["port"], public["password"])

	// Output:
	// localhost 8080 <nil>
}
