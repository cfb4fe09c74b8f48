// catalogctl - просмотр встроенного каталога из командной строки,
// без запуска HTTP-сервера.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
