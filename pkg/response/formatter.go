package response

// Format transforms a model into the plain mapping the boundary layer
// serializes. The payload key differs by outcome: successes carry "data",
// failures carry "details". A message that was never set formats as nil.
//
//	success: {status: "success", code: <code>, message: <message>, data: <data>}
//	failure: {status: "error",   code: <code>, message: <message>, details: <data>}
func Format(m *Model) map[string]interface{} {
	var message interface{}
	if m.message != "" {
		message = m.message
	}

	if m.success {
		return map[string]interface{}{
			"status":  "success",
			"code":    m.code.Int(),
			"message": message,
			"data":    m.data,
		}
	}
	return map[string]interface{}{
		"status":  "error",
		"code":    m.code.Int(),
		"message": message,
		"details": m.data,
	}
}
