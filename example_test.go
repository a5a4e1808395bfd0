package darc_test

import (
	"fmt"
	"sync"

	"github.com/zeebo/darc"
)

func Example() {
	buf := darc.NewWithRelease([]byte("hello"), func(b []byte) {
		fmt.Printf("released %q\n", b)
	})

	// clones on the same goroutine don't need atomics.
	tmp := buf.Clone()
	fmt.Println(buf.Count(), buf.Mode())
	tmp.Release()

	// sharing switches every handle to atomic counting.
	shared := buf.Share()

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(s darc.Shared[[]byte]) {
			defer wg.Done()
			defer s.Release()
			_ = len(s.Value())
		}(shared.Clone())
	}
	wg.Wait()

	// once the other goroutines are done the count can go back to Single.
	ref := shared.Ref()
	fmt.Println(ref.Count(), ref.Mode())
	fmt.Println(ref.Unshare(), ref.Mode())
	ref.Release()

	// Output:
	// 2 Single
	// 1 Multi
	// true Single
	// released "hello"
}

func ExampleRef_Unshare() {
	r := darc.New(42)
	c := r.Clone()
	s := c.Share()

	fmt.Println(r.Unshare())
	s.Release()
	fmt.Println(r.Unshare())
	r.Release()

	// Output:
	// false
	// true
}
