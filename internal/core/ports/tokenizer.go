package ports

import "bufio"

/*
Tokenizer defines the contract for turning one line of input into arguments.
This is a driven port, representing a domain capability.
*/
type Tokenizer interface {
	// ReadLine consumes exactly one line from r, without its line terminator.
	ReadLine(r *bufio.Reader) (string, error)

	// Tokenize splits a line into arguments according to the quoting rules.
	Tokenize(line string) ([]string, error)
}
