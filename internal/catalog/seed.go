package catalog

import (
	"github.com/Nick-prog/Microsoft-API-Email/internal/filter"
)

func bound(v float64) *float64 { return &v }

// seed is the static endpoint catalog for the Microsoft Graph mail surface.
// Data, not logic: descriptors are copied out by Load and never mutated.
var seed = []EndpointDescriptor{
	{
		ID:          "list-messages",
		Name:        "List Messages",
		BaseURL:     "https://graph.microsoft.com/v1.0/me/messages",
		Method:      "GET",
		Category:    "Mail",
		Version:     VersionV1,
		Scopes:      []string{"Mail.Read", "Mail.ReadWrite"},
		Description: "Get the messages in the signed-in user's mailbox",

		// Messages can be scoped to a single mail folder.
		ContextTemplate: "https://graph.microsoft.com/v1.0/me/mailFolders/{folder}/messages",

		Filters: []filter.Config{
			{
				Kind:        filter.KindBoolean,
				Label:       "Filter by Read Status",
				Description: "Show read or unread messages",
				Template:    "?$filter=isRead eq {value}",
				ParamKey:    "isRead",
				Options:     []string{"true", "false"},
				Default:     "false",
			},
			{
				Kind:        filter.KindDateTime,
				Label:       "Filter by Date Range",
				Description: "Messages received after this date",
				Template:    "?$filter=receivedDateTime ge {datetime}",
				ParamKey:    "receivedDateTime",
				Default:     "2025-01-15T00:00:00Z",
			},
			{
				Kind:        filter.KindNumber,
				Label:       "Limit Results",
				Description: "Maximum number of messages to return",
				Template:    "?$top={number}",
				ParamKey:    "top",
				Default:     "25",
				Min:         bound(1),
				Max:         bound(1000),
			},
			{
				Kind:        filter.KindBoolean,
				Label:       "Filter by Attachments",
				Description: "Show messages with or without attachments",
				Template:    "?$filter=hasAttachments eq {value}",
				ParamKey:    "hasAttachments",
				Options:     []string{"true", "false"},
				Default:     "true",
			},
			{
				Kind:        filter.KindSelect,
				Label:       "Filter by Importance",
				Description: "Filter by message importance level",
				Template:    "?$filter=importance eq '{value}'",
				ParamKey:    "importance",
				Options:     []string{"low", "normal", "high"},
				Default:     "high",
			},
			{
				Kind:        filter.KindCompound,
				Label:       "Order Results",
				Description: "Sort messages by field and direction",
				Template:    "?$orderBy={field} {direction}",
				ParamKey:    "orderBy",
				Fields: []filter.SubField{
					{
						Name:    "field",
						Kind:    filter.KindSelect,
						Options: []string{"receivedDateTime", "subject", "from", "importance"},
						Default: "receivedDateTime",
					},
					{
						Name:    "direction",
						Kind:    filter.KindSelect,
						Options: []string{"asc", "desc"},
						Default: "desc",
					},
				},
			},
			{
				Kind:        filter.KindMultiSelect,
				Label:       "Select Fields",
				Description: "Choose which fields to include in response",
				Template:    "?$select={fields}",
				ParamKey:    "select",
				Options: []string{
					"subject", "from", "receivedDateTime", "isRead",
					"hasAttachments", "importance", "body",
				},
				DefaultFields: []string{"subject", "from", "receivedDateTime", "isRead"},
			},
			{
				Kind:        filter.KindText,
				Label:       "Search Content",
				Description: "Search message content for specific text",
				Template:    "?$search=\"{text}\"",
				ParamKey:    "search",
				Default:     "project update",
			},
			{
				Kind:        filter.KindEmail,
				Label:       "Filter by Sender",
				Description: "Show messages from specific email address",
				Template:    "?$filter=from/emailAddress/address eq '{email}'",
				ParamKey:    "fromAddress",
				Default:     "example@company.com",
			},
		},
	},
	{
		ID:          "list-mail-folders",
		Name:        "List Mail Folders",
		BaseURL:     "https://graph.microsoft.com/v1.0/me/mailFolders",
		Method:      "GET",
		Category:    "Mail",
		Version:     VersionV1,
		Scopes:      []string{"Mail.Read", "Mail.ReadWrite"},
		Description: "Get the mail folders in the signed-in user's mailbox",

		Filters: []filter.Config{
			{
				Kind:        filter.KindText,
				Label:       "Filter by Folder Name",
				Description: "Filter folders by exact name match",
				Template:    "?$filter=displayName eq '{text}'",
				ParamKey:    "displayName",
				Default:     "Inbox",
			},
			{
				Kind:        filter.KindMultiSelect,
				Label:       "Select Folder Fields",
				Description: "Choose which folder properties to return",
				Template:    "?$select={fields}",
				ParamKey:    "select",
				Options: []string{
					"displayName", "unreadItemCount", "totalItemCount",
					"id", "parentFolderId",
				},
				DefaultFields: []string{"displayName", "unreadItemCount", "totalItemCount"},
			},
			{
				Kind:        filter.KindCompound,
				Label:       "Order Folders",
				Description: "Sort folders by field and direction",
				Template:    "?$orderBy={field} {direction}",
				ParamKey:    "orderBy",
				Fields: []filter.SubField{
					{
						Name:    "field",
						Kind:    filter.KindSelect,
						Options: []string{"displayName", "unreadItemCount", "totalItemCount"},
						Default: "displayName",
					},
					{
						Name:    "direction",
						Kind:    filter.KindSelect,
						Options: []string{"asc", "desc"},
						Default: "asc",
					},
				},
			},
			{
				Kind:        filter.KindStatic,
				Label:       "Expand Child Folders",
				Description: "Include child folders in the response",
				Template:    "?$expand=childFolders",
				ParamKey:    "expand",
			},
			{
				Kind:        filter.KindNumber,
				Label:       "Limit Results",
				Description: "Maximum number of folders to return",
				Template:    "?$top={number}",
				ParamKey:    "top",
				Default:     "50",
				Min:         bound(1),
				Max:         bound(500),
			},
		},
	},
}
