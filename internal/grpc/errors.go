package grpc

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// topicNotFound builds the NotFound status for an unknown topic name.
func topicNotFound(topic string) error {
	return status.Errorf(codes.NotFound, "the supplied topic %q does not exist", topic)
}

// subscriptionNotFound builds the NotFound status for a subscription name
// that is not associated with the given topic.
func subscriptionNotFound(subscription, topic string) error {
	return status.Errorf(codes.NotFound, "the supplied subscription %q is not associated with the given topic %q", subscription, topic)
}
