package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:8080/orders/"
	fixedID = "5f0ce3f2-1f2c-4b3a-9a9e-0d6a2f6f8b11"
	userID  = "user-1"
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdef0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	id := fixedID
	if rand.Intn(5) == 0 {
		id = randomID(36)
	}

	req, err := http.NewRequest(http.MethodGet, baseURL+id, nil)
	if err != nil {
		fmt.Println("failed to build request:", err)
		return
	}
	req.Header.Set("X-User-Id", userID)
	req.Header.Set("X-User-Role", "BUYER")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request failed:", err)
	} else {
		fmt.Println("GET", baseURL+id, "->", resp.Status)
		resp.Body.Close()
	}
}
