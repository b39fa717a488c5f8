// Package models - Test điều kiện sửa chiến dịch theo vòng đời.
package models

import "testing"

func TestCampaignEditable(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{CampaignDraft, true},
		{CampaignScheduled, true},
		{CampaignFailed, true},
		{CampaignSending, false},
		{CampaignSent, false},
	}
	for _, c := range cases {
		campaign := &NewsletterCampaign{Status: c.status}
		if got := campaign.Editable(); got != c.want {
			t.Errorf("Editable với status %q = %v, muốn %v", c.status, got, c.want)
		}
	}
}
