// Package main provides the larr command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/larr-ml/larr/backend/cpu"
	"github.com/larr-ml/larr/dense"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("larr %s\n", version)
			return
		case "info":
			info()
			return
		}
	}
	usage()
}

func info() {
	fmt.Printf("larr %s\n", version)
	fmt.Printf("backend: %s (pure Go)\n", cpu.New().Name())
	fmt.Println("dtypes:")
	for _, dt := range []dense.DataType{
		dense.Float64, dense.Float32, dense.Int64, dense.Int32, dense.Bool,
	} {
		fmt.Printf("  %-8s %d bytes\n", dt, dt.Size())
	}
}

func usage() {
	fmt.Println("larr - labeled n-dimensional arrays for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  info       Show backend and supported dtypes")
}
