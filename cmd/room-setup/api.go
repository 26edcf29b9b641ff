package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type roomDraft struct {
	Name        string
	Description string
	Capacity    string
}

type createdRoom struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

// fieldErrors is a 400 body from the rooms endpoint.
type fieldErrors map[string][]string

func (f fieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for _, key := range []string{"non_field_errors", "name", "description", "capacity"} {
		if msgs, ok := f[key]; ok {
			parts = append(parts, key+": "+strings.Join(msgs, " "))
		}
	}
	return strings.Join(parts, "\n")
}

type roomClient struct {
	baseURL  string
	language string
	http     *http.Client
}

func newRoomClient(baseURL, language string) *roomClient {
	return &roomClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// payload sends capacity as a number when it parses, otherwise as the raw
// text so the server reports the type error.
func (d roomDraft) payload() map[string]any {
	body := map[string]any{
		"name":        d.Name,
		"description": d.Description,
	}
	if n, err := strconv.Atoi(strings.TrimSpace(d.Capacity)); err == nil {
		body["capacity"] = n
	} else {
		body["capacity"] = d.Capacity
	}
	return body
}

func (c *roomClient) createRoom(d roomDraft) (*createdRoom, error) {
	jsonData, err := json.Marshal(d.payload())
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/v1/rooms", bytes.NewReader(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("room server not reachable: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var room createdRoom
		if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
			return nil, fmt.Errorf("decode created room: %w", err)
		}
		return &room, nil
	case http.StatusBadRequest:
		errs := fieldErrors{}
		if err := json.NewDecoder(resp.Body).Decode(&errs); err != nil {
			return nil, errors.New("server rejected the room")
		}
		return nil, errs
	default:
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}
}
