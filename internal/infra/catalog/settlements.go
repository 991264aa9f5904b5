package catalog

// Settlement is one class-action settlement definition in the catalog.
type Settlement struct {
	ID              string
	Company         string
	Title           string
	FundSize        string
	EstimatedPayout string
	Description     string
	Eligibility     string
	Deadline        string // YYYY-MM-DD, last day claims are accepted.
	ClaimURL        string
	Categories      []string
}

var defaultSettlements = []Settlement{
	{
		ID:              "facebook-privacy-2024",
		Company:         "Meta (Facebook)",
		Title:           "Facebook Privacy Settlement",
		FundSize:        "$725 million",
		EstimatedPayout: "$30-$200",
		Description:     "Settlement for Facebook users between 2007-2022 regarding data privacy",
		Eligibility:     "Any US Facebook user between May 2007 and December 2022",
		Deadline:        "2024-08-25",
		ClaimURL:        "https://www.facebookuserprivacysettlement.com",
		Categories:      []string{"privacy", "social media", "data breach"},
	},
	{
		ID:              "google-plus-2024",
		Company:         "Google",
		Title:           "Google Plus Data Breach",
		FundSize:        "$7.5 million",
		EstimatedPayout: "$5-$12",
		Description:     "Settlement for Google Plus users affected by data breach",
		Eligibility:     "Google Plus users between 2015-2019",
		Deadline:        "2024-10-08",
		ClaimURL:        "https://www.googleplusdatalitigation.com",
		Categories:      []string{"privacy", "social media", "data breach"},
	},
	{
		ID:              "zoom-privacy-2024",
		Company:         "Zoom",
		Title:           "Zoom Privacy Settlement",
		FundSize:        "$85 million",
		EstimatedPayout: "$15-$25",
		Description:     `Settlement for Zoom users regarding privacy and "Zoombombing"`,
		Eligibility:     "Zoom users between March 2016 and July 2021",
		Deadline:        "2024-07-15",
		ClaimURL:        "https://www.zoomsettlement.com",
		Categories:      []string{"privacy", "video conferencing", "security"},
	},
	{
		ID:              "tiktok-illinois-2024",
		Company:         "TikTok",
		Title:           "TikTok Biometric Privacy",
		FundSize:        "$92 million",
		EstimatedPayout: "$27-$167",
		Description:     "Settlement for Illinois TikTok users regarding biometric data",
		Eligibility:     "Illinois residents who used TikTok",
		Deadline:        "2024-09-01",
		ClaimURL:        "https://www.tiktokdataprivacysettlement.com",
		Categories:      []string{"privacy", "biometric", "social media"},
	},
	{
		ID:              "fortnite-refund-2024",
		Company:         "Epic Games",
		Title:           "Fortnite FTC Refund",
		FundSize:        "$245 million",
		EstimatedPayout: "$20-$500",
		Description:     "FTC refunds for unwanted Fortnite charges",
		Eligibility:     "Parents whose children made unauthorized purchases",
		Deadline:        "2025-01-10",
		ClaimURL:        "https://www.ftc.gov/fortnite",
		Categories:      []string{"gaming", "refund", "consumer protection"},
	},
	{
		ID:              "walmart-weighted-goods-2024",
		Company:         "Walmart",
		Title:           "Walmart Weighted Goods",
		FundSize:        "$45 million",
		EstimatedPayout: "$10-$500",
		Description:     "Settlement for overcharged weighted goods and bagged citrus",
		Eligibility:     "Purchased weighted goods or bagged citrus at Walmart 2018-2024",
		Deadline:        "2024-11-02",
		ClaimURL:        "https://www.walmartweightedgoodssettlement.com",
		Categories:      []string{"retail", "overcharge", "consumer"},
	},
	{
		ID:              "apple-butterfly-keyboard-2024",
		Company:         "Apple",
		Title:           "MacBook Butterfly Keyboard",
		FundSize:        "$50 million",
		EstimatedPayout: "$50-$395",
		Description:     "Settlement for defective butterfly keyboards in MacBooks",
		Eligibility:     "Purchased MacBook with butterfly keyboard 2015-2019",
		Deadline:        "2024-12-15",
		ClaimURL:        "https://www.keyboardsettlement.com",
		Categories:      []string{"technology", "product defect", "computer"},
	},
	{
		ID:              "verizon-admin-fee-2024",
		Company:         "Verizon",
		Title:           "Verizon Administrative Fees",
		FundSize:        "$100 million",
		EstimatedPayout: "$15-$100",
		Description:     "Settlement for undisclosed administrative charges",
		Eligibility:     "Verizon postpaid customers 2016-2023",
		Deadline:        "2024-08-20",
		ClaimURL:        "https://www.verizonadminfeesettlement.com",
		Categories:      []string{"telecom", "fees", "consumer"},
	},
	{
		ID:              "northwind-telecom-fees-2026",
		Company:         "Northwind Telecom",
		Title:           "Northwind Telecom Regulatory Recovery Fee",
		FundSize:        "$38 million",
		EstimatedPayout: "$20-$90",
		Description:     "Settlement over a monthly recovery fee that was not disclosed at sign-up",
		Eligibility:     "Northwind postpaid wireless customers 2019-2025",
		Deadline:        "2027-02-28",
		ClaimURL:        "https://www.northwindfeesettlement.com",
		Categories:      []string{"telecom", "fees", "consumer"},
	},
	{
		ID:              "contoso-bank-overdraft-2026",
		Company:         "Contoso Bank",
		Title:           "Contoso Bank Overdraft Fees",
		FundSize:        "$61 million",
		EstimatedPayout: "$25-$300",
		Description:     "Settlement for overdraft fees charged on transactions that were authorized against a positive balance",
		Eligibility:     "Contoso checking account holders charged an overdraft fee 2017-2024",
		Deadline:        "2026-12-31",
		ClaimURL:        "https://www.contosooverdraftsettlement.com",
		Categories:      []string{"banking", "fees", "consumer"},
	},
	{
		ID:              "fabrikam-airlines-refund-2026",
		Company:         "Fabrikam Airlines",
		Title:           "Fabrikam Airlines Cancelled Flight Refunds",
		FundSize:        "$140 million",
		EstimatedPayout: "Up to $450",
		Description:     "Cash refunds for cancelled flights that were compensated with expiring vouchers",
		Eligibility:     "Passengers whose Fabrikam flight was cancelled between 2020 and 2023",
		Deadline:        "2027-05-15",
		ClaimURL:        "https://www.fabrikamrefundsettlement.com",
		Categories:      []string{"travel", "refund", "consumer protection"},
	},
	{
		ID:              "globex-streaming-autorenew-2026",
		Company:         "Globex Streaming",
		Title:           "Globex Streaming Auto-Renewal",
		FundSize:        "$22 million",
		EstimatedPayout: "$10-$60",
		Description:     "Settlement for subscriptions renewed without clear consent or cancellation options",
		Eligibility:     "Globex subscribers in the US who were auto-renewed 2018-2025",
		Deadline:        "2026-11-30",
		ClaimURL:        "https://www.globexautorenewal.com",
		Categories:      []string{"streaming", "subscription", "consumer"},
	},
	{
		ID:              "initech-data-breach-2026",
		Company:         "Initech",
		Title:           "Initech Payroll Data Breach",
		FundSize:        "$12 million",
		EstimatedPayout: "Unknown",
		Description:     "Settlement for employees of client companies whose payroll records were exposed",
		Eligibility:     "Notified by Initech of the 2024 payroll data incident",
		Deadline:        "2027-01-20",
		ClaimURL:        "https://www.initechdatasettlement.com",
		Categories:      []string{"privacy", "data breach", "employment"},
	},
}
