package llm

const matchingPrompt = `You match people to money they may be owed.
Rate from 0 to 100 how relevant the opportunity is to the user, weighing:
- where they live or have lived
- whether the time period fits
- products or services they are likely to have used
- demographic fit

Answer only through the tool with a score, the reasons behind it and whether the user is likely eligible.`

const emailAnalysisPrompt = `You find money opportunities in emails.
Read the email and list anything that could put money back in the user's pocket:
- refunds or returns
- rebates
- class action settlements
- price drop refunds
- insurance claims
- cancelled subscriptions that are owed a refund
- overcharges

For each one give the type, the company, the amount (or "Unknown"), a short description, what the user must do and the deadline if one is stated.
Set found to false and return an empty list when there is nothing.`

const formFillingPrompt = `You fill out claim forms.
Use only the user information provided to produce a value for each form field.
Never invent data. When the information for a field is missing, return null for it.`
