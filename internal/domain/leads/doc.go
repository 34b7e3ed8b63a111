// Package leads defines the public lead-capture submissions: contact messages, consultation
// schedules and quote requests, together with their back-office status workflows.
package leads
