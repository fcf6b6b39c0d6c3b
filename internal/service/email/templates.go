package email

// HTML templates for the campaign's transactional mail.

const leadCapturedTemplate = `
<h2>&#9989; New Solar Lead Captured</h2>
<p><b>Name:</b> {{.Name}}</p>
<p><b>Number:</b> {{.Number}}</p>
<p><b>Status:</b> Approved (Interest Confirmed)</p>
<p><b>Preferred Timing:</b> {{.Timing}}</p>
<hr>
<p><i>This customer has explicitly expressed interest and provided a time for a meeting.</i></p>
`

const campaignSummaryTemplate = `
<h2>Campaign Run Finished</h2>
<p><b>Calls placed:</b> {{.Placed}}</p>
<p><b>Calls failed:</b> {{.Failed}}</p>
<hr>
<p><i>Lead notifications for this run were delivered individually as callers confirmed availability.</i></p>
`
