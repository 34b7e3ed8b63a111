// Package connector stores uploaded media objects on local disk or in Azure Blob Storage.
package connector
