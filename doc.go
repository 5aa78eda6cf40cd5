// Package leitner implements a Modified-Leitner spaced repetition
// scheduler. Flashcards live in numbered buckets: bucket 0 holds the least
// retained material and is reviewed every day, and each higher bucket
// doubles the review interval (bucket 1 every 2nd day, bucket 2 every 4th
// day, and so on). After a review a card moves between buckets based on how
// the recall went: an easy recall promotes it one bucket, a hard recall
// demotes it one bucket (floored at 0), and a wrong answer sends it back to
// bucket 0.
//
// The package operates on two equivalent representations of bucket state:
// a sparse BucketMap keyed by bucket number, and a dense []CardSet indexed
// by bucket number with no gaps. All operations are pure with respect to
// their inputs; Update returns a fresh BucketMap and never mutates the
// caller's map or its nested sets.
package leitner
