// Package s3 implements blobstore.BlobStore for Amazon S3.
//
// Uploads go through the AWS SDK's managed uploader, which transparently
// switches to parallel multipart uploads for large batches.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket", "embeddings/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := store.Put(ctx, "wordnet/nouns.bin", payload); err != nil {
//	    log.Fatal(err)
//	}
package s3
