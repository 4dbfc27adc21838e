package s3gate

// NewFetchRequest builds the store fetch for a resolved route.
//
// rangeHeader is the inbound request's Range header value; it travels to
// the store untouched, and an empty value means a full-object fetch. No
// other request headers are translated.
func NewFetchRequest(route Route, rangeHeader string) FetchRequest {
	return FetchRequest{
		Bucket: route.Bucket,
		Key:    route.Key,
		Range:  rangeHeader,
	}
}
