package protocol

import "testing"

func TestCRC16SpotCheck(t *testing.T) {
	testCases := []struct {
		data     []byte
		expected uint16
	}{
		{
			data:     []byte{0xFF, 0xFF, 0xFD, 0x00, 0x01, 0x07, 0x00, 0x55, 0x00, 0x06, 0x04, 0x26},
			expected: 0x5D65,
		},
		{
			data:     []byte{},
			expected: 0x0000,
		},
	}

	for i, tc := range testCases {
		result := CRC16(tc.data)
		if result != tc.expected {
			t.Errorf("test case %d: CRC16(% X) = 0x%04X, want 0x%04X", i, tc.data, result, tc.expected)
		}
	}
}

func TestCRC16Consistency(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	crc1 := CRC16(data)
	crc2 := CRC16(data)

	if crc1 != crc2 {
		t.Errorf("CRC16 not consistent: first=%04X, second=%04X", crc1, crc2)
	}
}

func TestCRC16Different(t *testing.T) {
	data1 := []byte{0x01, 0x02, 0x03}
	data2 := []byte{0x01, 0x02, 0x04}

	crc1 := CRC16(data1)
	crc2 := CRC16(data2)

	if crc1 == crc2 {
		t.Errorf("CRC16 collision: both inputs produced %04X", crc1)
	}
}
