// Package sample decodes sample files into stereo frame sequences and loads
// them off the audio thread.
//
// Sources are resolved by index against a [Config]: a base directory plus an
// ordered list of file names. WAV files (16/32-bit integer PCM or 32-bit
// float) are decoded with go-audio, MP3 files with go-mp3. Decoded samples
// are converted to the instrument rate before they are handed over.
package sample
