package bridge_test

import (
	"fmt"
	"sync"

	"github.com/llxisdsh/bridge"
)

func ExampleMonitor() {
	m := bridge.NewMonitor()

	var wg sync.WaitGroup
	for _, d := range []bridge.Direction{bridge.North, bridge.South} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.CrossCar(d, func() {})
		}()
	}
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.CrossPedestrian(func() {})
		}()
	}
	wg.Wait()

	fmt.Println(m)
	// Output: bridge: 0 on | north 0 (waiting 0) | south 0 (waiting 0) | pedestrians 0 (waiting 0) | turn none
}
