package password_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hasbyte1/go-password/password"
)

// Example demonstrates hashing, persisting and verifying a password.
func Example() {
	p, err := password.Hash("correct horse battery staple")
	if err != nil {
		log.Fatal(err)
	}

	stored := p.String() // persist this

	ok, err := password.New(stored).Match("correct horse battery staple")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)
	// Output: true
}

// ExampleNewHasher shows explicit configuration instead of the process-wide
// default.
func ExampleNewHasher() {
	h, err := password.NewHasher(password.Config{WorkFactor: 10})
	if err != nil {
		log.Fatal(err)
	}
	p, _ := h.Hash("hunter2")
	wf, _ := p.WorkFactor()
	fmt.Println(wf)
	// Output: 10
}

// ExamplePassword_Match_malformed shows how a corrupt record is told apart
// from a wrong password.
func ExamplePassword_Match_malformed() {
	ok, err := password.New("not-a-valid-token").Match("hunter2")
	fmt.Println(ok, errors.Is(err, password.ErrMalformedHash))
	// Output: false true
}
