// Package proxy implements the development proxy that forwards browser calls
// to a Salesforce endpoint named in a request header, working around CORS.
//
// Requests to /proxy or /proxy/* carry the target URL in the endpoint header
// (SalesforceProxy-Endpoint by default). Only targets matching the endpoint
// pattern are forwarded, and only whitelisted request headers travel upstream.
package proxy
