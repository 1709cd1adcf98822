//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
)

const (
	toLower = 'a' - 'A'
	tchars  = "!#$%&'*+-.^_`|~0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func main() {
	toLowerTable := func() [256]byte {
		var a [256]byte
		for i := 0; i < 256; i++ {
			c := byte(i)
			if c >= 'A' && c <= 'Z' {
				c += toLower
			}
			a[i] = c
		}
		return a
	}()

	toUpperTable := func() [256]byte {
		var a [256]byte
		for i := 0; i < 256; i++ {
			c := byte(i)
			if c >= 'a' && c <= 'z' {
				c -= toLower
			}
			a[i] = c
		}
		return a
	}()

	tokenTable := func() [256]byte {
		var a [256]byte
		for i := 0; i < len(tchars); i++ {
			a[tchars[i]] = 1
		}
		return a
	}()

	lowerTokenTable := func() [256]byte {
		a := tokenTable
		for c := 'A'; c <= 'Z'; c++ {
			a[c] = 0
		}
		return a
	}()

	// RFC 9110 field-vchar：HTAB、SP、VCHAR 以及 obs-text。
	fieldValueTable := func() [256]byte {
		var a [256]byte
		for i := 0; i < 256; i++ {
			if i == '\t' || i == ' ' || (i >= 0x21 && i <= 0x7e) || i >= 0x80 {
				a[i] = 1
			}
		}
		return a
	}()

	w := bytes.NewBufferString(pre)
	fmt.Fprintf(w, "\tToLowerTable    = %q\n", toLowerTable)
	fmt.Fprintf(w, "\tToUpperTable    = %q\n", toUpperTable)
	fmt.Fprintf(w, "\tTokenTable      = %q\n", tokenTable)
	fmt.Fprintf(w, "\tLowerTokenTable = %q\n", lowerTokenTable)
	fmt.Fprintf(w, "\tFieldValueTable = %q\n", fieldValueTable)
	fmt.Fprintf(w, ")\n")

	if err := os.WriteFile("bytesconv_table.go", w.Bytes(), 0o660); err != nil {
		log.Fatal(err)
	}
}

const pre = `// Code generated by go run bytesconv_table_gen.go; DO NOT EDIT.
// See bytesconv_table_gen.go for more information about these tables.

package bytesconv

const (
`
