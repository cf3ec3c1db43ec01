package mem_test

import (
	"fmt"

	"github.com/joshuapare/memkit/mem"
)

func Example() {
	const fourMegabytes = 4 * 1024 * 1024

	// Allocate 4 MiB of aligned, zeroed, sequential-read memory.
	m, err := mem.Allocate(fourMegabytes, true, true)
	if err != nil {
		fmt.Println("allocate:", err)
		return
	}
	defer m.Free()

	// Write through a typed view.
	data := mem.Slice[float32](m)
	data[0] = 1.234
	data[1] = 5.678

	// Read back through another view over the same handle.
	view := mem.Slice[float32](m)
	fmt.Println(view[0], view[1], view[2])
	fmt.Println(len(view) == m.Len()/4)

	// Output:
	// 1.234 5.678 0
	// true
}
