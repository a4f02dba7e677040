package domain

// ListEntry is a provider mailing list (Mailchimp audience, GetResponse campaign)
// with its subscriber statistics. Exactly one of the detail pointers is set.
type ListEntry struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	CreatedAt         string `json:"createdAt"`
	UnsubscribedCount int    `json:"unsubscribedCount"`

	*MailchimpDetails
	*GetResponseDetails
}

type MailchimpDetails struct {
	WebID           int `json:"webId"`
	MemberCount     int `json:"memberCount"`
	SubscribedCount int `json:"subscribedCount"`
	CleanedCount    int `json:"cleanedCount"`
}

type GetResponseDetails struct {
	LanguageCode      string `json:"languageCode"`
	IsDefault         bool   `json:"isDefault"`
	SubscribersCount  int    `json:"subscribersCount"`
	ActiveSubscribers int    `json:"activeSubscribers"`
	RemovedCount      int    `json:"removedCount"`
	ComplaintsCount   int    `json:"complaintsCount"`
}
