package ipc

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"resty.dev/v3"
)

func newClient() *resty.Client {
	path := SocketPath()

	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, _, _ string) (net.Conn, error) {
				return net.Dial("unix", path)
			},
		},
	})

	client.SetBaseURL("http://slidedrift")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "slidedrift")

	return client
}

// SendStatus fetches the daemon status, also serving as the liveness
// probe at startup.
func SendStatus() (*StatusResponse, error) {
	result := StatusResponse{}
	response, err := newClient().R().SetResult(&result).Get("/status")
	if err != nil {
		return nil, err
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error fetching status: %s", response.Status())
	}
	return &result, nil
}

func SendNext() error  { return post("/next", nil) }
func SendPrev() error  { return post("/prev", nil) }
func SendPause() error { return post("/pause", nil) }
func SendStop() error  { return post("/stop", nil) }

func SendLoad(folders []string) error {
	return post("/load", LoadRequest{Folders: folders})
}

func post(route string, body any) error {
	req := newClient().R()
	if body != nil {
		req.SetBody(body)
	}
	response, err := req.Post(route)
	if err != nil {
		return err
	}
	if response.StatusCode() != http.StatusOK {
		return fmt.Errorf("error sending command: %s", response.Status())
	}
	return nil
}
