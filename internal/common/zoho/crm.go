package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	httpclient "mortgage-checklist-workers/internal/common/http"
)

type CRMClient struct {
	apiKey     string
	oauthToken string
	baseURL    string
	httpClient *httpclient.Client
}

type recordResponse struct {
	Data []struct {
		Code    string `json:"code"`
		Details struct {
			ID string `json:"id"`
		} `json:"details"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"data"`
}

func NewCRMClient(apiKey, oauthToken string) *CRMClient {
	return &CRMClient{
		apiKey:     apiKey,
		oauthToken: oauthToken,
		baseURL:    "https://www.zohoapis.com/crm/v3",
		httpClient: httpclient.NewClient(30 * time.Second),
	}
}

// UpdateRecordFields updates arbitrary fields on a record in the given CRM module
// (e.g. "Deals"). Field names must match the CRM field API names.
func (c *CRMClient) UpdateRecordFields(ctx context.Context, module, recordID string, fields map[string]interface{}) error {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, module, recordID)

	payload := map[string]interface{}{
		"data": []map[string]interface{}{fields},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal record fields: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Zoho-oauthtoken "+c.oauthToken)

	resp, err := c.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("record %s not found in module %s", recordID, module)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to update record (status %d): %s", resp.StatusCode, string(body))
	}

	var updateResp recordResponse
	if err := json.Unmarshal(body, &updateResp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(updateResp.Data) == 0 {
		return fmt.Errorf("no data in response")
	}

	if updateResp.Data[0].Status != "success" {
		return fmt.Errorf("record update failed: %s", updateResp.Data[0].Message)
	}

	return nil
}

// SearchRecords finds records in a module by a field criteria, e.g.
// SearchRecords(ctx, "Deals", "Application_ID", "app-123").
func (c *CRMClient) SearchRecords(ctx context.Context, module, field, value string) ([]map[string]interface{}, error) {
	criteria := fmt.Sprintf("(%s:equals:%s)", field, value)
	endpoint := fmt.Sprintf("%s/%s/search?criteria=%s", c.baseURL, module, url.QueryEscape(criteria))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Zoho-oauthtoken "+c.oauthToken)

	resp, err := c.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	// Zoho returns 204 when the search matches nothing
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to search records (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Data []map[string]interface{} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Data, nil
}

// AttachNote adds a note to a record, used to mirror the generated checklist
// summary into the CRM activity stream.
func (c *CRMClient) AttachNote(ctx context.Context, module, recordID, title, content string) error {
	endpoint := fmt.Sprintf("%s/%s/%s/Notes", c.baseURL, module, recordID)

	payload := map[string]interface{}{
		"data": []map[string]interface{}{
			{
				"Note_Title":   title,
				"Note_Content": content,
			},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal note: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Zoho-oauthtoken "+c.oauthToken)

	resp, err := c.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to attach note (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
