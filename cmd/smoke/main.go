// Command smoke exercises a running sketchont server: it resolves and
// publishes a diagram over HTTP, then removes the published graph.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const smokeDiagram = `{
  "concepts": [
    {"id": "person", "prefix": "ex", "uri": "Person", "geometry": {"x": 0, "y": 0, "width": 120, "height": 60}}
  ],
  "attribute_blocks": [
    {"id": "person-attrs", "concept_associated": "person", "attributes": [{"prefix": "ex", "uri": "name", "domain": "person"}]}
  ],
  "individuals": [
    {"id": "alice", "prefix": "ex", "uri": "Alice", "geometry": {"x": 121, "y": 1, "width": 80, "height": 30}}
  ],
  "rhombuses": [
    {"id": "name-fn", "prefix": "ex", "uri": "name", "type": "owl:FunctionalProperty"}
  ]
}`

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Server base URL")
	wait := flag.Duration("wait", 2*time.Second, "Time to wait for the server to start")
	flag.Parse()

	time.Sleep(*wait)
	fmt.Println("Starting smoke test...")

	fmt.Println("1. Resolving diagram...")
	if _, ok := sendRequest(http.MethodPost, *baseURL+"/v1/resolve?mode=owl", smokeDiagram, http.StatusOK); !ok {
		fmt.Println("FAILED: Resolve")
		os.Exit(1)
	}
	fmt.Println("PASSED: Resolve")

	fmt.Println("2. Publishing diagram...")
	body, ok := sendRequest(http.MethodPost, *baseURL+"/v1/publish?mode=rdf", smokeDiagram, http.StatusOK)
	if !ok {
		fmt.Println("FAILED: Publish")
		os.Exit(1)
	}
	var published struct {
		RunID string `json:"run_id"`
	}
	if err := json.Unmarshal(body, &published); err != nil || published.RunID == "" {
		fmt.Printf("FAILED: Publish returned no run id: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("PASSED: Publish")

	fmt.Println("3. Removing published graph...")
	if _, ok := sendRequest(http.MethodDelete, *baseURL+"/v1/graphs/"+published.RunID, "", http.StatusNoContent); !ok {
		fmt.Println("FAILED: Unpublish")
		os.Exit(1)
	}
	fmt.Println("PASSED: Unpublish")
}

func sendRequest(method, url, payload string, want int) ([]byte, bool) {
	var body io.Reader
	if payload != "" {
		body = bytes.NewBufferString(payload)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != want {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return nil, false
	}
	fmt.Printf("Response: %s\n", string(respBody))
	return respBody, true
}
