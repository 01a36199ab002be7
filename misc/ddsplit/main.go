package main

import (
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	ddouble "github.com/shabbyrobe/go-ddouble"
)

// Inspection tool for checking what the kernel does to a value, or to a pair
// of values under one operation: the result is printed in several layouts
// along with its raw limbs, its packed bits and its exact binary
// decomposition.

const usage = `Double-double splitter

Usage: <a> [<op> <b>]

Ops: + - * / % min max cmp`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) != 2 && len(os.Args) != 4 {
		fmt.Println(usage)
		return errors.New("missing args")
	}

	a, err := ddouble.Parse(os.Args[1])
	if err != nil {
		return err
	}

	result := a
	if len(os.Args) == 4 {
		b, err := ddouble.Parse(os.Args[3])
		if err != nil {
			return err
		}

		switch op := os.Args[2]; op {
		case "+":
			result = a.Add(b)
		case "-":
			result = a.Sub(b)
		case "*", "x":
			result = a.Mul(b)
		case "/":
			result = a.Quo(b)
		case "%":
			result = a.Rem(b)
		case "min":
			result = ddouble.Min(a, b)
		case "max":
			result = ddouble.Max(a, b)
		case "cmp":
			fmt.Printf("%s cmp %s == %d\n", a, b, a.Cmp(b))
			return nil
		default:
			return errors.Errorf("unknown op %q", op)
		}
	}

	fmt.Println("g:  ", result.String())
	fmt.Println("E34:", result.Text('E', 34))

	hi, lo := result.Raw()
	fmt.Printf("raw: DDouble{hi: %v, lo: %v}\n", hi, lo)
	fmt.Printf("hex: DDouble{hi: %x, lo: %x}\n", hi, lo)

	if sign, exp, hiBits, loBits, ok := result.Bits(); ok {
		fmt.Printf("bits: sign:%d exp:%d hi:%#x lo:%#x\n", sign, exp, hiBits, loBits)
	}

	sign, exp, mant := result.Decompose()
	spew.Dump(struct {
		Sign int
		Exp  int
		Mant string
	}{sign, exp, fmt.Sprint(mant)})

	return nil
}
